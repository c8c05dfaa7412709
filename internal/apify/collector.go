package apify

import (
	"context"
	"fmt"

	"github.com/ignite/linkedin-outreach/internal/config"
)

// ProfileCollector runs the profile search actor and collects its dataset.
type ProfileCollector struct {
	client *Client
	cfg    config.ApifyConfig
}

// NewProfileCollector creates a collector bound to the configured search actor.
func NewProfileCollector(client *Client, cfg config.ApifyConfig) *ProfileCollector {
	return &ProfileCollector{client: client, cfg: cfg}
}

// MissingCredential returns the name of the first absent required setting,
// or "" when the collector is fully configured.
func (p *ProfileCollector) MissingCredential() string {
	switch {
	case p.cfg.Token == "":
		return "APIFY_TOKEN"
	case p.cfg.SearchActorID == "":
		return "APIFY_SEARCH_ACTOR_ID"
	case p.cfg.LinkedInSessionCookie == "":
		return "LINKEDIN_LI_AT"
	}
	return ""
}

// CollectProfiles triggers a crawl run for the given queries and returns the
// scraped profile items. The run blocks up to the configured crawl wait; any
// non-success terminal status is an error.
func (p *ProfileCollector) CollectProfiles(ctx context.Context, queries []string, maxResults int) ([]ProfileItem, error) {
	run, err := p.client.RunActorSync(ctx, p.cfg.SearchActorID, crawlInput{
		Queries:    queries,
		MaxResults: maxResults,
		LiAt:       p.cfg.LinkedInSessionCookie,
	}, p.cfg.CrawlWait())
	if err != nil {
		return nil, err
	}
	if !run.Succeeded() {
		return nil, fmt.Errorf("apify run status %s", run.Status)
	}
	if run.DefaultDatasetID == "" {
		return nil, fmt.Errorf("no dataset id from actor run %s", run.ID)
	}

	var items []ProfileItem
	if err := p.client.DatasetItems(ctx, run.DefaultDatasetID, &items); err != nil {
		return nil, err
	}
	return items, nil
}
