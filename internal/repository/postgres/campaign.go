package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/service/campaign"
	"github.com/lib/pq"
)

// CampaignRepo implements campaign.Repository and the discovery service's
// campaign reads against PostgreSQL.
type CampaignRepo struct{ db *sql.DB }

// NewCampaignRepo creates a Postgres-backed campaign repository.
func NewCampaignRepo(db *sql.DB) *CampaignRepo { return &CampaignRepo{db: db} }

const campaignColumns = `id, user_id, name, COALESCE(product_service,''), target_industry,
       ideal_job_roles, COALESCE(company_size,''), COALESCE(region,''),
       COALESCE(outreach_goal,''), COALESCE(brand_voice,''), optional_triggers,
       status, created_at, updated_at`

func scanCampaign(row interface{ Scan(...interface{}) error }) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.ProductService, &c.TargetIndustry,
		pq.Array(&c.IdealJobRoles), &c.CompanySize, &c.Region,
		&c.OutreachGoal, &c.BrandVoice, pq.Array(&c.OptionalTriggers),
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepo) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE id = $1
	`, id)
	c, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, campaign.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) ListByUser(ctx context.Context, userID string) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// ListActive returns active campaigns, optionally filtered to ids. Used by
// the autodiscovery pass.
func (r *CampaignRepo) ListActive(ctx context.Context, ids []string) ([]domain.Campaign, error) {
	q := `SELECT ` + campaignColumns + ` FROM campaigns WHERE status = 'active'`
	args := []interface{}{}
	if len(ids) > 0 {
		q += ` AND id = ANY($1)`
		args = append(args, pq.Array(ids))
	}
	q += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CampaignRepo) Create(ctx context.Context, c *domain.Campaign) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaigns
			(id, user_id, name, product_service, target_industry, ideal_job_roles,
			 company_size, region, outreach_goal, brand_voice, optional_triggers,
			 status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`, c.ID, c.UserID, c.Name, c.ProductService, c.TargetIndustry,
		pq.Array(c.IdealJobRoles), c.CompanySize, c.Region, c.OutreachGoal,
		c.BrandVoice, pq.Array(c.OptionalTriggers), c.Status)
	if err != nil {
		return "", fmt.Errorf("create campaign: %w", err)
	}
	return c.ID, nil
}

func (r *CampaignRepo) Update(ctx context.Context, id string, u campaign.UpdateFields) error {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}

	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.ProductService != nil {
		add("product_service", *u.ProductService)
	}
	if u.TargetIndustry != nil {
		add("target_industry", *u.TargetIndustry)
	}
	if u.IdealJobRoles != nil {
		add("ideal_job_roles", pq.Array(*u.IdealJobRoles))
	}
	if u.CompanySize != nil {
		add("company_size", *u.CompanySize)
	}
	if u.Region != nil {
		add("region", *u.Region)
	}
	if u.OutreachGoal != nil {
		add("outreach_goal", *u.OutreachGoal)
	}
	if u.BrandVoice != nil {
		add("brand_voice", *u.BrandVoice)
	}
	if u.OptionalTriggers != nil {
		add("optional_triggers", pq.Array(*u.OptionalTriggers))
	}

	if len(sets) == 0 {
		return nil
	}

	q := fmt.Sprintf("UPDATE campaigns SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), idx)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return campaign.ErrNotFound
	}
	return nil
}

func (r *CampaignRepo) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE campaigns SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return campaign.ErrNotFound
	}
	return nil
}
