package discovery

import (
	"context"

	"github.com/ignite/linkedin-outreach/internal/apify"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/serper"
)

// CampaignStore is the campaign read access discovery needs.
type CampaignStore interface {
	// Get returns a single campaign. An unknown id yields the repository's
	// not-found sentinel, which the service propagates unchanged.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// ListActive returns active campaigns, optionally filtered to ids.
	ListActive(ctx context.Context, ids []string) ([]domain.Campaign, error)
}

// ProspectStore persists discovered prospects.
type ProspectStore interface {
	// BulkInsert inserts a batch of prospects and returns the inserted count.
	BulkInsert(ctx context.Context, prospects []domain.Prospect) (int, error)
}

// SearchProvider executes one search query.
type SearchProvider interface {
	Configured() bool
	Search(ctx context.Context, query string, num int) ([]serper.OrganicResult, error)
}

// CrawlProvider runs the profile crawl actor.
type CrawlProvider interface {
	MissingCredential() string
	CollectProfiles(ctx context.Context, queries []string, maxResults int) ([]apify.ProfileItem, error)
}
