package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ignite/linkedin-outreach/internal/domain"
)

// MessageRepo stores generated message history. Rows are append-only.
type MessageRepo struct{ db *sql.DB }

// NewMessageRepo creates a Postgres-backed message repository.
func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{db: db} }

func (r *MessageRepo) Create(ctx context.Context, m *domain.Message) (string, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, prospect_id, campaign_id, type, content, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, m.ID, m.ProspectID, m.CampaignID, m.Type, m.Content)
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}
	return m.ID, nil
}

func (r *MessageRepo) ListByProspect(ctx context.Context, prospectID string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, prospect_id, campaign_id, type, content, sent_at, replied_at, created_at
		FROM messages
		WHERE prospect_id = $1
		ORDER BY created_at DESC
	`, prospectID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ProspectID, &m.CampaignID, &m.Type,
			&m.Content, &m.SentAt, &m.RepliedAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
