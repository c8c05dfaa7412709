package domain

import "time"

// QueueStatus is the terminal-per-attempt status of a send queue item.
// A failed item stays in "error" until something outside this layer resets it.
type QueueStatus string

const (
	QueueQueued QueueStatus = "queued"
	QueueSent   QueueStatus = "sent"
	QueueError  QueueStatus = "error"
)

// QueueItem is one scheduled outreach send. LinkedInURL is copied from the
// prospect at enqueue time and not re-validated later.
type QueueItem struct {
	ID          string      `json:"id" db:"id"`
	UserID      string      `json:"user_id" db:"user_id"`
	CampaignID  string      `json:"campaign_id" db:"campaign_id"`
	ProspectID  string      `json:"prospect_id" db:"prospect_id"`
	LinkedInURL string      `json:"linkedin_url" db:"linkedin_url"`
	Message     string      `json:"message" db:"message"`
	Status      QueueStatus `json:"status" db:"status"`
	Error       string      `json:"error,omitempty" db:"error"`
	ScheduledAt time.Time   `json:"scheduled_at" db:"scheduled_at"`
	SentAt      *time.Time  `json:"sent_at" db:"sent_at"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
