package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/pkg/httputil"
	"github.com/ignite/linkedin-outreach/internal/service/campaign"
)

// CreateCampaign creates a campaign for the acting user in draft status.
func (h *Handlers) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaign.CreateInput
	if !httputil.Decode(w, r, &req) {
		return
	}
	c, err := h.dashboard.Create(r.Context(), userID(r), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.Created(w, c)
}

// ListCampaigns returns the acting user's campaigns, newest first.
func (h *Handlers) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.dashboard.List(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	httputil.OK(w, campaigns)
}

// GetCampaign returns one campaign by ID.
func (h *Handlers) GetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.dashboard.Get(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, c)
}

type updateCampaignRequest struct {
	Name             *string   `json:"name"`
	ProductService   *string   `json:"product_service"`
	TargetIndustry   *string   `json:"target_industry"`
	IdealJobRoles    *[]string `json:"ideal_job_roles"`
	CompanySize      *string   `json:"company_size"`
	Region           *string   `json:"region"`
	OutreachGoal     *string   `json:"outreach_goal"`
	BrandVoice       *string   `json:"brand_voice"`
	OptionalTriggers *[]string `json:"optional_triggers"`
}

// UpdateCampaign applies a partial update to a campaign's fields.
func (h *Handlers) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req updateCampaignRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	err := h.dashboard.Update(r.Context(), chi.URLParam(r, "campaignID"), campaign.UpdateFields{
		Name:             req.Name,
		ProductService:   req.ProductService,
		TargetIndustry:   req.TargetIndustry,
		IdealJobRoles:    req.IdealJobRoles,
		CompanySize:      req.CompanySize,
		Region:           req.Region,
		OutreachGoal:     req.OutreachGoal,
		BrandVoice:       req.BrandVoice,
		OptionalTriggers: req.OptionalTriggers,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, map[string]string{"status": "updated"})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateCampaignStatus writes a campaign's status directly.
func (h *Handlers) UpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "campaignID")
	if err := h.dashboard.UpdateStatus(r.Context(), id, domain.CampaignStatus(req.Status)); err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, map[string]string{"status": req.Status})
}

// CreateProspect adds a manually entered prospect.
func (h *Handlers) CreateProspect(w http.ResponseWriter, r *http.Request) {
	var req campaign.ProspectInput
	if !httputil.Decode(w, r, &req) {
		return
	}
	p, err := h.dashboard.CreateProspect(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.Created(w, p)
}

// ListProspects returns a campaign's prospects, newest first.
func (h *Handlers) ListProspects(w http.ResponseWriter, r *http.Request) {
	prospects, err := h.dashboard.ListProspects(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if prospects == nil {
		prospects = []domain.Prospect{}
	}
	httputil.OK(w, prospects)
}

// UpdateProspectStatus writes a prospect's funnel status.
func (h *Handlers) UpdateProspectStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "prospectID")
	if err := h.dashboard.UpdateProspectStatus(r.Context(), id, domain.ProspectStatus(req.Status)); err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, map[string]string{"status": req.Status})
}

type recordMessageRequest struct {
	CampaignID string             `json:"campaign_id"`
	Type       domain.MessageType `json:"type"`
	Content    string             `json:"content"`
}

// RecordMessage appends a generated message to a prospect's history.
func (h *Handlers) RecordMessage(w http.ResponseWriter, r *http.Request) {
	var req recordMessageRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	prospectID := chi.URLParam(r, "prospectID")
	m, err := h.dashboard.RecordMessage(r.Context(), prospectID, req.CampaignID, req.Type, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.Created(w, m)
}

// ListMessages returns a prospect's message history.
func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.dashboard.ListMessages(r.Context(), chi.URLParam(r, "prospectID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	httputil.OK(w, messages)
}

// EnqueueMessage schedules a message send for a prospect.
func (h *Handlers) EnqueueMessage(w http.ResponseWriter, r *http.Request) {
	var req campaign.EnqueueInput
	if !httputil.Decode(w, r, &req) {
		return
	}
	item, err := h.dashboard.Enqueue(r.Context(), userID(r), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.Created(w, item)
}

// GetProfile returns the acting user's own profile record.
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.dashboard.GetProfile(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, p)
}

// SaveProfile creates or updates the acting user's profile record.
func (h *Handlers) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req campaign.ProfileInput
	if !httputil.Decode(w, r, &req) {
		return
	}
	p, err := h.dashboard.SaveProfile(r.Context(), userID(r), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, p)
}

// ListQueue returns the acting user's queued sends.
func (h *Handlers) ListQueue(w http.ResponseWriter, r *http.Request) {
	items, err := h.dashboard.ListQueue(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []domain.QueueItem{}
	}
	httputil.OK(w, items)
}
