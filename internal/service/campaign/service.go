package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/linkedin-outreach/internal/domain"
)

// Service implements dashboard business logic over campaigns, prospects,
// messages, and the send queue. All public methods are safe for concurrent
// use if the underlying repositories are concurrency-safe.
type Service struct {
	campaigns Repository
	prospects ProspectRepository
	messages  MessageRepository
	queue     QueueRepository
	profiles  ProfileRepository // optional
}

// NewService creates a dashboard service backed by the given repositories.
func NewService(campaigns Repository, prospects ProspectRepository, messages MessageRepository, queue QueueRepository) *Service {
	return &Service{campaigns: campaigns, prospects: prospects, messages: messages, queue: queue}
}

// WithProfiles attaches the user profile store.
func (s *Service) WithProfiles(profiles ProfileRepository) *Service {
	s.profiles = profiles
	return s
}

// Get returns a single campaign.
func (s *Service) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.campaigns.Get(ctx, id)
}

// List returns the user's campaigns, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Campaign, error) {
	return s.campaigns.ListByUser(ctx, userID)
}

// CreateInput holds the fields for creating a new campaign.
type CreateInput struct {
	Name             string   `json:"name"`
	ProductService   string   `json:"product_service"`
	TargetIndustry   string   `json:"target_industry"`
	IdealJobRoles    []string `json:"ideal_job_roles"`
	CompanySize      string   `json:"company_size"`
	Region           string   `json:"region"`
	OutreachGoal     string   `json:"outreach_goal"`
	BrandVoice       string   `json:"brand_voice"`
	OptionalTriggers []string `json:"optional_triggers"`
}

// Create validates and persists a new campaign in draft status.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Campaign, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.TargetIndustry == "" {
		return nil, fmt.Errorf("%w: target_industry is required", ErrValidation)
	}

	c := &domain.Campaign{
		ID:               uuid.New().String(),
		UserID:           userID,
		Name:             input.Name,
		ProductService:   input.ProductService,
		TargetIndustry:   input.TargetIndustry,
		IdealJobRoles:    input.IdealJobRoles,
		CompanySize:      input.CompanySize,
		Region:           input.Region,
		OutreachGoal:     input.OutreachGoal,
		BrandVoice:       input.BrandVoice,
		OptionalTriggers: input.OptionalTriggers,
		Status:           domain.CampaignDraft,
	}

	id, err := s.campaigns.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

// Update modifies mutable campaign fields.
func (s *Service) Update(ctx context.Context, id string, u UpdateFields) error {
	return s.campaigns.Update(ctx, id, u)
}

// UpdateStatus writes a new campaign status. Any known status may follow any
// other; unknown values are rejected.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	if !domain.ValidCampaignStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.campaigns.UpdateStatus(ctx, id, status)
}

// ProspectInput holds the fields for a manually entered prospect.
type ProspectInput struct {
	CampaignID  string `json:"campaign_id"`
	Name        string `json:"name"`
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	LinkedInURL string `json:"linkedin_url"`
}

// CreateProspect adds a manually entered prospect in pending status.
func (s *Service) CreateProspect(ctx context.Context, input ProspectInput) (*domain.Prospect, error) {
	if input.CampaignID == "" {
		return nil, fmt.Errorf("%w: campaign_id is required", ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if _, err := s.campaigns.Get(ctx, input.CampaignID); err != nil {
		return nil, err
	}

	p := &domain.Prospect{
		ID:          uuid.New().String(),
		CampaignID:  input.CampaignID,
		Name:        input.Name,
		JobTitle:    input.JobTitle,
		Company:     input.Company,
		LinkedInURL: input.LinkedInURL,
		Status:      domain.ProspectPending,
	}
	id, err := s.prospects.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// ListProspects returns a campaign's prospects, newest first.
func (s *Service) ListProspects(ctx context.Context, campaignID string) ([]domain.Prospect, error) {
	return s.prospects.ListByCampaign(ctx, campaignID)
}

// UpdateProspectStatus writes a prospect's funnel status.
func (s *Service) UpdateProspectStatus(ctx context.Context, id string, status domain.ProspectStatus) error {
	switch status {
	case domain.ProspectPending, domain.ProspectContacted, domain.ProspectReplied,
		domain.ProspectConverted, domain.ProspectNoResponse:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.prospects.UpdateStatus(ctx, id, status)
}

// RecordMessage appends one generated message to a prospect's history.
func (s *Service) RecordMessage(ctx context.Context, prospectID, campaignID string, typ domain.MessageType, content string) (*domain.Message, error) {
	if prospectID == "" || content == "" {
		return nil, fmt.Errorf("%w: prospect_id and content are required", ErrValidation)
	}
	m := &domain.Message{
		ID:         uuid.New().String(),
		ProspectID: prospectID,
		CampaignID: campaignID,
		Type:       domain.NormalizeMessageType(typ),
		Content:    content,
	}
	id, err := s.messages.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

// ListMessages returns a prospect's generated message history, newest first.
func (s *Service) ListMessages(ctx context.Context, prospectID string) ([]domain.Message, error) {
	return s.messages.ListByProspect(ctx, prospectID)
}

// Enqueue schedules a message send for a prospect. The prospect's linkedin
// URL is copied onto the queue item at this point and never re-read.
func (s *Service) Enqueue(ctx context.Context, userID string, input EnqueueInput) (*domain.QueueItem, error) {
	if input.ProspectID == "" || input.Message == "" {
		return nil, fmt.Errorf("%w: prospect_id and message are required", ErrValidation)
	}
	p, err := s.prospects.Get(ctx, input.ProspectID)
	if err != nil {
		return nil, err
	}
	if p.LinkedInURL == "" {
		return nil, fmt.Errorf("%w: prospect has no linkedin_url", ErrValidation)
	}

	scheduledAt := time.Now().UTC()
	if input.ScheduledAt != nil {
		scheduledAt = input.ScheduledAt.UTC()
	}
	item := &domain.QueueItem{
		ID:          uuid.New().String(),
		UserID:      userID,
		CampaignID:  p.CampaignID,
		ProspectID:  p.ID,
		LinkedInURL: p.LinkedInURL,
		Message:     input.Message,
		Status:      domain.QueueQueued,
		ScheduledAt: scheduledAt,
	}
	id, err := s.queue.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

// ListQueue returns the user's queued sends.
func (s *Service) ListQueue(ctx context.Context, userID string) ([]domain.QueueItem, error) {
	return s.queue.ListByUser(ctx, userID)
}

// ProfileInput holds the editable fields of the user's own profile.
type ProfileInput struct {
	FullName  string `json:"full_name"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

// GetProfile returns the user's profile record.
func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.profiles == nil {
		return nil, ErrProfileNotFound
	}
	return s.profiles.GetByUser(ctx, userID)
}

// SaveProfile creates or updates the user's profile record.
func (s *Service) SaveProfile(ctx context.Context, userID string, input ProfileInput) (*domain.Profile, error) {
	if s.profiles == nil {
		return nil, ErrProfileNotFound
	}
	p := &domain.Profile{
		ID:        uuid.New().String(),
		UserID:    userID,
		FullName:  input.FullName,
		Company:   input.Company,
		Role:      input.Role,
		AvatarURL: input.AvatarURL,
	}
	if existing, err := s.profiles.GetByUser(ctx, userID); err == nil {
		p.ID = existing.ID
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
