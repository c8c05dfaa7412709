package campaign

import (
	"context"
	"time"

	"github.com/ignite/linkedin-outreach/internal/domain"
)

// Repository defines the data access contract for campaigns.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a single campaign. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// ListByUser returns the user's campaigns ordered by created_at DESC.
	ListByUser(ctx context.Context, userID string) ([]domain.Campaign, error)

	// Create inserts a new campaign and returns its ID.
	Create(ctx context.Context, c *domain.Campaign) (string, error)

	// Update modifies a campaign. Only non-nil fields in the update are applied.
	Update(ctx context.Context, id string, u UpdateFields) error

	// UpdateStatus writes a campaign's status. Plain field write; any known
	// status may follow any other.
	UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error
}

// ProspectRepository is the data access contract for manually managed
// prospects. Discovery has its own narrower store interface.
type ProspectRepository interface {
	Get(ctx context.Context, id string) (*domain.Prospect, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.Prospect, error)
	Create(ctx context.Context, p *domain.Prospect) (string, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProspectStatus) error
}

// MessageRepository stores generated message history. Append-only: one row
// per generation, never updated in place.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (string, error)
	ListByProspect(ctx context.Context, prospectID string) ([]domain.Message, error)
}

// QueueRepository schedules and lists queued sends.
type QueueRepository interface {
	Create(ctx context.Context, item *domain.QueueItem) (string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.QueueItem, error)
}

// ProfileRepository stores the dashboard user's own profile record.
type ProfileRepository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// UpdateFields holds the mutable fields for a campaign update.
// Nil fields are not applied.
type UpdateFields struct {
	Name             *string
	ProductService   *string
	TargetIndustry   *string
	IdealJobRoles    *[]string
	CompanySize      *string
	Region           *string
	OutreachGoal     *string
	BrandVoice       *string
	OptionalTriggers *[]string
}

// EnqueueInput schedules one prospect's message for sending.
type EnqueueInput struct {
	CampaignID  string     `json:"campaign_id"`
	ProspectID  string     `json:"prospect_id"`
	Message     string     `json:"message"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}
