package domain

import (
	"time"
)

// CampaignStatus enumerates the lifecycle states of an outreach campaign.
// Transitions are direct field writes driven by user action; there is no
// automatic state machine.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Brand voice values with special tone handling in message generation.
// Any other value passes messages through untouched.
const (
	VoiceFormal       = "formal"
	VoiceEnthusiastic = "enthusiastic"
)

// Campaign describes an outreach campaign: who to target, what to pitch,
// and how to sound while doing it.
type Campaign struct {
	ID               string         `json:"id" db:"id"`
	UserID           string         `json:"user_id" db:"user_id"`
	Name             string         `json:"name" db:"name"`
	ProductService   string         `json:"product_service" db:"product_service"`
	TargetIndustry   string         `json:"target_industry" db:"target_industry"`
	IdealJobRoles    []string       `json:"ideal_job_roles" db:"ideal_job_roles"`
	CompanySize      string         `json:"company_size" db:"company_size"`
	Region           string         `json:"region" db:"region"`
	OutreachGoal     string         `json:"outreach_goal" db:"outreach_goal"`
	BrandVoice       string         `json:"brand_voice" db:"brand_voice"`
	OptionalTriggers []string       `json:"optional_triggers" db:"optional_triggers"`
	Status           CampaignStatus `json:"status" db:"status"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// IsActive reports whether the campaign is eligible for scheduled discovery.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignActive
}

// ValidCampaignStatus reports whether s is one of the four known states.
func ValidCampaignStatus(s CampaignStatus) bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted:
		return true
	}
	return false
}
