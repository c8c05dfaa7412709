// Package queue drains the scheduled send queue. Each pass claims a small
// batch of queued items in scheduled order and pushes them through the send
// provider one at a time. Every item reaches a terminal status within the
// pass: sent on success, error on failure. Nothing is retried here; a failed
// item stays in error until re-queued from outside.
package queue
