package api

import (
	"errors"
	"net/http"

	"github.com/ignite/linkedin-outreach/internal/pkg/httputil"
	"github.com/ignite/linkedin-outreach/internal/service/campaign"
	"github.com/ignite/linkedin-outreach/internal/service/discovery"
	"github.com/ignite/linkedin-outreach/internal/service/enrichment"
	"github.com/ignite/linkedin-outreach/internal/service/message"
	"github.com/ignite/linkedin-outreach/internal/service/queue"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	discovery  *discovery.Service
	enrichment *enrichment.Service
	generator  *message.Generator
	queue      *queue.Service
	dashboard  *campaign.Service
}

// NewHandlers wires the services into the HTTP layer.
func NewHandlers(d *discovery.Service, e *enrichment.Service, g *message.Generator, q *queue.Service, dash *campaign.Service) *Handlers {
	return &Handlers{discovery: d, enrichment: e, generator: g, queue: q, dashboard: dash}
}

// writeServiceError maps service sentinels onto the HTTP failure taxonomy:
// missing input 400, unknown entity 404, missing configuration 500 (with the
// credential named), upstream provider failure 502.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, discovery.ErrMissingCampaignID),
		errors.Is(err, enrichment.ErrMissingCampaignID),
		errors.Is(err, campaign.ErrValidation),
		errors.Is(err, campaign.ErrInvalidStatus):
		httputil.BadRequest(w, err.Error())
	case errors.Is(err, campaign.ErrNotFound),
		errors.Is(err, campaign.ErrProspectNotFound),
		errors.Is(err, campaign.ErrProfileNotFound):
		httputil.NotFound(w, err.Error())
	case errors.Is(err, discovery.ErrUpstream):
		httputil.BadGateway(w, err.Error())
	default:
		httputil.InternalError(w, err)
	}
}

type discoverRequest struct {
	CampaignID string `json:"campaignId"`
}

// DiscoverProspects runs search-based discovery for one campaign.
func (h *Handlers) DiscoverProspects(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	res, err := h.discovery.Discover(r.Context(), req.CampaignID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, res)
}

// AutodiscoverProspects runs discovery across active campaigns.
func (h *Handlers) AutodiscoverProspects(w http.ResponseWriter, r *http.Request) {
	var req discovery.AutodiscoverInput
	httputil.DecodeOptional(r, &req)
	res, err := h.discovery.Autodiscover(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, res)
}

type crawlRequest struct {
	CampaignID string `json:"campaignId"`
	MaxResults int    `json:"maxResults"`
}

// CrawlProspects runs crawl-actor discovery for one campaign.
func (h *Handlers) CrawlProspects(w http.ResponseWriter, r *http.Request) {
	var req crawlRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	res, err := h.discovery.Crawl(r.Context(), req.CampaignID, req.MaxResults)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, res)
}

type enrichRequest struct {
	CampaignID string `json:"campaignId"`
	BatchSize  int    `json:"batchSize"`
}

// EnrichProspects processes unenriched prospects for one campaign.
func (h *Handlers) EnrichProspects(w http.ResponseWriter, r *http.Request) {
	var req enrichRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	res, err := h.enrichment.ProcessCampaign(r.Context(), req.CampaignID, req.BatchSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, res)
}

// GenerateMessage produces one outreach message without persisting it.
func (h *Handlers) GenerateMessage(w http.ResponseWriter, r *http.Request) {
	var req message.Input
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.Prospect.Name == "" {
		httputil.BadRequest(w, "prospect is required")
		return
	}
	out, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, out)
}

type processQueueRequest struct {
	BatchSize int `json:"batchSize"`
}

// ProcessQueue drains a batch of scheduled sends.
func (h *Handlers) ProcessQueue(w http.ResponseWriter, r *http.Request) {
	var req processQueueRequest
	httputil.DecodeOptional(r, &req)
	res, err := h.queue.Process(r.Context(), req.BatchSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, res)
}

type analyzeProfileRequest struct {
	ProfileData     string `json:"profileData"`
	CampaignContext any    `json:"campaignContext"`
}

// AnalyzeProfile runs a one-off profile analysis.
func (h *Handlers) AnalyzeProfile(w http.ResponseWriter, r *http.Request) {
	var req analyzeProfileRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.ProfileData == "" {
		httputil.BadRequest(w, "profileData is required")
		return
	}
	analysis, err := h.enrichment.AnalyzeProfile(r.Context(), req.ProfileData, req.CampaignContext)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, map[string]any{"analysis": analysis})
}

// userID reads the acting user from the request. Identity is taken on trust
// from the header; session handling lives outside this service.
func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-Id"); id != "" {
		return id
	}
	return "default"
}
