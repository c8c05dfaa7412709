// Package discovery implements prospect discovery: building search queries
// from campaign attributes, calling the search or crawl provider, parsing
// results into prospect records, deduplicating by profile URL, and inserting
// them into the store.
//
// Three entry points map to the three discovery operations: Discover (one
// campaign via search), Autodiscover (all active campaigns, best-effort),
// and Crawl (one campaign via the crawl actor).
package discovery
