package serper

// searchRequest is the Serper.dev search request body.
type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// searchResponse is the subset of the Serper.dev response we consume.
type searchResponse struct {
	Organic []OrganicResult `json:"organic"`
}

// OrganicResult is one organic search hit.
type OrganicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
