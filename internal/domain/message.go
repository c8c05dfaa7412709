package domain

import "time"

// MessageType is one of the four fixed outreach message kinds.
type MessageType string

const (
	MessageConnection MessageType = "connection"
	MessageFollowUp1  MessageType = "follow_up_1"
	MessageFollowUp2  MessageType = "follow_up_2"
	MessageFollowUp3  MessageType = "follow_up_3"
)

// NormalizeMessageType maps any unrecognized value to MessageConnection.
func NormalizeMessageType(t MessageType) MessageType {
	switch t {
	case MessageConnection, MessageFollowUp1, MessageFollowUp2, MessageFollowUp3:
		return t
	}
	return MessageConnection
}

// Message is one generated piece of outreach text. History is append-only:
// one row per generation, not keyed uniquely per type.
type Message struct {
	ID         string      `json:"id" db:"id"`
	ProspectID string      `json:"prospect_id" db:"prospect_id"`
	CampaignID string      `json:"campaign_id" db:"campaign_id"`
	Type       MessageType `json:"type" db:"type"`
	Content    string      `json:"content" db:"content"`
	SentAt     *time.Time  `json:"sent_at" db:"sent_at"`
	RepliedAt  *time.Time  `json:"replied_at" db:"replied_at"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}
