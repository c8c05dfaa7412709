package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/linkedin-outreach/internal/domain"
)

// QueueRepo persists the send queue. The processor reads strictly by
// scheduled_at ascending; both terminal writes are plain status flips.
type QueueRepo struct{ db *sql.DB }

// NewQueueRepo creates a Postgres-backed send queue repository.
func NewQueueRepo(db *sql.DB) *QueueRepo { return &QueueRepo{db: db} }

const queueColumns = `id, user_id, campaign_id, prospect_id, linkedin_url, message,
       status, COALESCE(error,''), scheduled_at, sent_at, created_at`

func scanQueueItem(row interface{ Scan(...interface{}) error }) (*domain.QueueItem, error) {
	item := &domain.QueueItem{}
	err := row.Scan(
		&item.ID, &item.UserID, &item.CampaignID, &item.ProspectID,
		&item.LinkedInURL, &item.Message, &item.Status, &item.Error,
		&item.ScheduledAt, &item.SentAt, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *QueueRepo) Create(ctx context.Context, item *domain.QueueItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages_queue
			(id, user_id, campaign_id, prospect_id, linkedin_url, message,
			 status, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`, item.ID, item.UserID, item.CampaignID, item.ProspectID,
		item.LinkedInURL, item.Message, item.Status, item.ScheduledAt)
	if err != nil {
		return "", fmt.Errorf("create queue item: %w", err)
	}
	return item.ID, nil
}

func (r *QueueRepo) ListByUser(ctx context.Context, userID string) ([]domain.QueueItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+queueColumns+`
		FROM messages_queue
		WHERE user_id = $1
		ORDER BY scheduled_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list queue items: %w", err)
	}
	defer rows.Close()

	var out []domain.QueueItem
	for rows.Next() {
		item, err := scanQueueItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan queue item: %w", err)
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}

// NextQueued returns up to limit queued items, oldest scheduled first.
func (r *QueueRepo) NextQueued(ctx context.Context, limit int) ([]domain.QueueItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+queueColumns+`
		FROM messages_queue
		WHERE status = 'queued'
		ORDER BY scheduled_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch queued items: %w", err)
	}
	defer rows.Close()

	var out []domain.QueueItem
	for rows.Next() {
		item, err := scanQueueItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan queue item: %w", err)
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}

// MarkSent flips an item to sent, clears any stale error and records the
// send time.
func (r *QueueRepo) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE messages_queue SET status = 'sent', sent_at = $1, error = NULL
		WHERE id = $2
	`, sentAt, id)
	if err != nil {
		return fmt.Errorf("mark queue item sent: %w", err)
	}
	return nil
}

// MarkError flips an item to error with the failure message. Terminal: the
// processor never picks the item up again.
func (r *QueueRepo) MarkError(ctx context.Context, id, message string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE messages_queue SET status = 'error', error = $1
		WHERE id = $2
	`, message, id)
	if err != nil {
		return fmt.Errorf("mark queue item error: %w", err)
	}
	return nil
}
