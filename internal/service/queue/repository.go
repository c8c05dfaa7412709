package queue

import (
	"context"
	"time"

	"github.com/ignite/linkedin-outreach/internal/domain"
)

// Repository is the persistence surface the processor needs.
type Repository interface {
	// NextQueued returns up to limit queued items ordered by scheduled_at
	// ascending. Items already sent or errored are never returned.
	NextQueued(ctx context.Context, limit int) ([]domain.QueueItem, error)
	// MarkSent flips an item to sent, clears any prior error and records
	// the send time.
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
	// MarkError flips an item to error with the failure message.
	MarkError(ctx context.Context, id, message string) error
}

// Sender delivers one message to a profile URL.
type Sender interface {
	SendMessage(ctx context.Context, profileURL, message string) error
}

// Locker serializes queue passes across processes. Optional: a nil Locker
// means passes run unserialized.
type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}
