// Package enrichment generates AI insight objects for prospects.
//
// Processing is sequential and terminal per prospect: a prospect is marked
// processed exactly once whether the model call succeeded, the response
// failed to parse (static fallback), or the call errored (error marker).
// Nothing in this package retries.
package enrichment
