package discovery

import (
	"context"
	"fmt"

	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/pkg/logger"
)

// Caps on how many prospects a single discovery pass may insert.
const (
	discoverCap        = 50 // single-campaign search discovery
	autodiscoverCap    = 50 // hard ceiling on maxPerCampaign
	defaultPerCampaign = 25
	defaultCrawlMax    = 30
	crawlMaxCeiling    = 100
)

// Service implements prospect discovery. Work items are processed strictly
// sequentially within an invocation; batches and dedup maps are scoped
// per-request, so concurrent invocations for different campaigns are safe.
type Service struct {
	campaigns CampaignStore
	prospects ProspectStore
	search    SearchProvider
	crawler   CrawlProvider

	resultsPerQuery int
	maxPerCampaign  int
}

// NewService creates a discovery service. resultsPerQuery and maxPerCampaign
// fall back to the provider defaults when zero.
func NewService(campaigns CampaignStore, prospects ProspectStore, search SearchProvider, crawler CrawlProvider, resultsPerQuery, maxPerCampaign int) *Service {
	if resultsPerQuery <= 0 {
		resultsPerQuery = 10
	}
	if maxPerCampaign <= 0 {
		maxPerCampaign = defaultPerCampaign
	}
	return &Service{
		campaigns:       campaigns,
		prospects:       prospects,
		search:          search,
		crawler:         crawler,
		resultsPerQuery: resultsPerQuery,
		maxPerCampaign:  maxPerCampaign,
	}
}

// Result reports one campaign's discovery outcome.
type Result struct {
	Inserted  int      `json:"inserted"`
	Attempted int      `json:"attempted"`
	Queries   []string `json:"queries"`
}

// Discover runs search-based discovery for a single campaign. Provider
// failures abort the whole operation (unlike Autodiscover, which skips).
func (s *Service) Discover(ctx context.Context, campaignID string) (*Result, error) {
	if campaignID == "" {
		return nil, ErrMissingCampaignID
	}
	if !s.search.Configured() {
		return nil, fmt.Errorf("%w: SERPER_API_KEY", ErrNotConfigured)
	}

	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	queries := BuildSearchQueries(campaign)
	var candidates []domain.Prospect
	for _, q := range queries {
		results, err := s.search.Search(ctx, q, s.resultsPerQuery)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		for _, r := range results {
			if p, ok := prospectFromResult(campaign.ID, r, firstRole(campaign)); ok {
				candidates = append(candidates, p)
			}
		}
	}

	batch := dedupeByURL(candidates)
	if len(batch) > discoverCap {
		batch = batch[:discoverCap]
	}

	inserted := 0
	if len(batch) > 0 {
		inserted, err = s.prospects.BulkInsert(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("inserting prospects: %w", err)
		}
	}

	return &Result{Inserted: inserted, Attempted: len(candidates), Queries: queries}, nil
}

// AutodiscoverInput selects which campaigns the scheduled pass covers.
type AutodiscoverInput struct {
	CampaignIDs    []string `json:"campaignIds,omitempty"`
	MaxPerCampaign int      `json:"maxPerCampaign,omitempty"`
}

// CampaignResult is one campaign's slice of an autodiscovery pass.
type CampaignResult struct {
	CampaignID string `json:"campaignId"`
	Inserted   int    `json:"inserted"`
	Attempted  int    `json:"attempted"`
}

// AutodiscoverResult sums an autodiscovery pass over active campaigns.
type AutodiscoverResult struct {
	TotalInserted int              `json:"totalInserted"`
	Details       []CampaignResult `json:"details"`
}

// Autodiscover runs search-based discovery across active campaigns.
// Per-query and per-campaign failures are logged and skipped so one broken
// campaign cannot starve the rest.
func (s *Service) Autodiscover(ctx context.Context, in AutodiscoverInput) (*AutodiscoverResult, error) {
	if !s.search.Configured() {
		return nil, fmt.Errorf("%w: SERPER_API_KEY", ErrNotConfigured)
	}

	maxPerCampaign := in.MaxPerCampaign
	if maxPerCampaign == 0 {
		maxPerCampaign = s.maxPerCampaign
	}
	maxPerCampaign = clamp(maxPerCampaign, 1, autodiscoverCap)

	campaigns, err := s.campaigns.ListActive(ctx, in.CampaignIDs)
	if err != nil {
		return nil, fmt.Errorf("listing active campaigns: %w", err)
	}

	out := &AutodiscoverResult{Details: []CampaignResult{}}
	for i := range campaigns {
		campaign := &campaigns[i]
		queries := BuildSearchQueries(campaign)

		var candidates []domain.Prospect
		for _, q := range queries {
			results, err := s.search.Search(ctx, q, s.resultsPerQuery)
			if err != nil {
				logger.Warn("autodiscover search failed", "campaign_id", campaign.ID, "err", err)
				continue
			}
			for _, r := range results {
				if p, ok := prospectFromResult(campaign.ID, r, firstRole(campaign)); ok {
					candidates = append(candidates, p)
				}
			}
		}

		batch := dedupeByURL(candidates)
		if len(batch) > maxPerCampaign {
			batch = batch[:maxPerCampaign]
		}

		inserted := 0
		if len(batch) > 0 {
			inserted, err = s.prospects.BulkInsert(ctx, batch)
			if err != nil {
				logger.Error("autodiscover insert failed", "campaign_id", campaign.ID, "err", err)
				inserted = 0
			}
		}

		out.TotalInserted += inserted
		out.Details = append(out.Details, CampaignResult{
			CampaignID: campaign.ID,
			Inserted:   inserted,
			Attempted:  len(candidates),
		})
	}
	return out, nil
}

// Crawl runs crawl-actor discovery for a single campaign. The actor run
// blocks until the platform's wait bound; non-success terminal statuses
// surface as ErrUpstream.
func (s *Service) Crawl(ctx context.Context, campaignID string, maxResults int) (*Result, error) {
	if campaignID == "" {
		return nil, ErrMissingCampaignID
	}
	if missing := s.crawler.MissingCredential(); missing != "" {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, missing)
	}
	if maxResults <= 0 {
		maxResults = defaultCrawlMax
	}
	if maxResults > crawlMaxCeiling {
		maxResults = crawlMaxCeiling
	}

	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	queries := BuildCrawlQueries(campaign)
	items, err := s.crawler.CollectProfiles(ctx, queries, maxResults)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var candidates []domain.Prospect
	for _, item := range items {
		if p, ok := prospectFromProfileItem(campaign.ID, item); ok {
			candidates = append(candidates, p)
		}
	}

	batch := dedupeByURL(candidates)
	if len(batch) > maxResults {
		batch = batch[:maxResults]
	}

	inserted := 0
	if len(batch) > 0 {
		inserted, err = s.prospects.BulkInsert(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("inserting prospects: %w", err)
		}
	}

	return &Result{Inserted: inserted, Attempted: len(candidates), Queries: queries}, nil
}

func firstRole(c *domain.Campaign) string {
	if len(c.IdealJobRoles) > 0 {
		return c.IdealJobRoles[0]
	}
	return ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
