package domain

import (
	"encoding/json"
	"time"
)

// ProspectStatus tracks where a prospect sits in the outreach funnel.
type ProspectStatus string

const (
	ProspectPending    ProspectStatus = "pending"
	ProspectContacted  ProspectStatus = "contacted"
	ProspectReplied    ProspectStatus = "replied"
	ProspectConverted  ProspectStatus = "converted"
	ProspectNoResponse ProspectStatus = "no_response"
)

// Prospect is a discovered (or manually entered) LinkedIn profile attached
// to a campaign. LinkedInURL is the dedup key within a discovery batch;
// uniqueness is not enforced globally.
type Prospect struct {
	ID              string          `json:"id" db:"id"`
	CampaignID      string          `json:"campaign_id" db:"campaign_id"`
	Name            string          `json:"name" db:"name"`
	JobTitle        string          `json:"job_title" db:"job_title"`
	Company         string          `json:"company" db:"company"`
	LinkedInURL     string          `json:"linkedin_url" db:"linkedin_url"`
	Status          ProspectStatus  `json:"status" db:"status"`
	RawData         json.RawMessage `json:"raw_data,omitempty" db:"raw_data"`
	ProfileAnalysis json.RawMessage `json:"profile_analysis,omitempty" db:"profile_analysis"`
	AIProcessed     *bool           `json:"ai_processed,omitempty" db:"ai_processed"`
	AIInsights      *Insight        `json:"ai_insights,omitempty" db:"ai_insights"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// InsightSource tags how an Insight was produced, so callers can tell a
// model-generated insight from the static degraded fallback.
type InsightSource string

const (
	InsightSourceModel    InsightSource = "model"
	InsightSourceFallback InsightSource = "fallback"
	InsightSourceError    InsightSource = "error"
)

// Insight is the fixed-shape enrichment object stored per prospect.
type Insight struct {
	ProspectID          string        `json:"prospect_id"`
	PersonalityTraits   []string      `json:"personality_traits"`
	EngagementScore     int           `json:"engagement_score"`
	PainPoints          []string      `json:"pain_points"`
	RecommendedApproach string        `json:"recommended_approach"`
	PersonalizedHooks   []string      `json:"personalized_hooks"`
	BestContactTime     string        `json:"best_contact_time"`
	DecisionMakerScore  int           `json:"decision_maker_score"`
	AISummary           string        `json:"ai_summary"`
	Source              InsightSource `json:"source"`
}
