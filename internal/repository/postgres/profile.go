package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/service/campaign"
)

// ProfileRepo stores the dashboard user's own profile record.
type ProfileRepo struct{ db *sql.DB }

// NewProfileRepo creates a Postgres-backed profile repository.
func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, COALESCE(full_name,''), COALESCE(company,''),
		       COALESCE(role,''), COALESCE(avatar_url,''), created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Company,
		&p.Role, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, campaign.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, user_id, full_name, company, role, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			company = EXCLUDED.company,
			role = EXCLUDED.role,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
	`, p.ID, p.UserID, p.FullName, p.Company, p.Role, p.AvatarURL)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
