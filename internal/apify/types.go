package apify

// RunStatus values reported by the Apify platform.
const (
	RunSucceeded = "SUCCEEDED"
)

// Run describes an actor run as returned by the runs endpoint.
type Run struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

// Succeeded reports whether the run reached the successful terminal status.
// Any other terminal status (FAILED, ABORTED, TIMED-OUT) counts as failure.
func (r *Run) Succeeded() bool { return r.Status == RunSucceeded }

// runEnvelope wraps the run object in the API's data field.
type runEnvelope struct {
	Data Run `json:"data"`
}

// ProfileItem is one scraped profile from the search actor's dataset.
type ProfileItem struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	ProfileURL string `json:"profileUrl"`
}

// crawlInput is the input document for the profile search actor.
type crawlInput struct {
	Queries    []string `json:"queries"`
	MaxResults int      `json:"maxResults"`
	LiAt       string   `json:"li_at"`
}

// sendInput is the input document for the browser-automation send actor.
type sendInput struct {
	ProfileURL string `json:"profileUrl"`
	Message    string `json:"message"`
	LiAt       string `json:"li_at"`
}
