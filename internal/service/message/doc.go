// Package message generates outreach message text for a prospect and
// campaign. Backends are tried as an ordered list of capability-checked
// strategies: the primary language model, the fallback inference host, and
// finally static liquid templates. Brand-voice tone transforms are applied
// as post-processing regardless of which strategy produced the text.
//
// The generator does not persist anything; callers store the message and,
// optionally, enqueue it for sending.
package message
