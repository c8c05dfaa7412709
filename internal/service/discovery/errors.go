package discovery

import "errors"

// Sentinel errors for the discovery service. Handlers map these onto the
// HTTP failure taxonomy: missing input 400, missing configuration 500,
// provider failure 502. An unknown campaign surfaces as the repository's
// campaign.ErrNotFound, propagated unchanged.
var (
	ErrMissingCampaignID = errors.New("campaignId is required")
	ErrNotConfigured     = errors.New("missing configuration")
	ErrUpstream          = errors.New("upstream provider error")
)
