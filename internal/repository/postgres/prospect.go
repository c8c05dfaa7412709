package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/service/campaign"
)

// ProspectRepo implements prospect persistence for the dashboard, discovery
// inserts, and enrichment reads/writes.
type ProspectRepo struct{ db *sql.DB }

// NewProspectRepo creates a Postgres-backed prospect repository.
func NewProspectRepo(db *sql.DB) *ProspectRepo { return &ProspectRepo{db: db} }

const prospectColumns = `id, campaign_id, COALESCE(name,''), COALESCE(job_title,''),
       COALESCE(company,''), COALESCE(linkedin_url,''), status,
       raw_data, profile_analysis, ai_processed, ai_insights, created_at, updated_at`

func scanProspect(row interface{ Scan(...interface{}) error }) (*domain.Prospect, error) {
	p := &domain.Prospect{}
	var rawData, analysis, insights []byte
	err := row.Scan(
		&p.ID, &p.CampaignID, &p.Name, &p.JobTitle,
		&p.Company, &p.LinkedInURL, &p.Status,
		&rawData, &analysis, &p.AIProcessed, &insights, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.RawData = rawData
	p.ProfileAnalysis = analysis
	if len(insights) > 0 {
		var ins domain.Insight
		if err := json.Unmarshal(insights, &ins); err == nil {
			p.AIInsights = &ins
		}
	}
	return p, nil
}

func (r *ProspectRepo) Get(ctx context.Context, id string) (*domain.Prospect, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+prospectColumns+`
		FROM prospects
		WHERE id = $1
	`, id)
	p, err := scanProspect(row)
	if err == sql.ErrNoRows {
		return nil, campaign.ErrProspectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prospect: %w", err)
	}
	return p, nil
}

func (r *ProspectRepo) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Prospect, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+prospectColumns+`
		FROM prospects
		WHERE campaign_id = $1
		ORDER BY created_at DESC
	`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	defer rows.Close()

	var out []domain.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProspectRepo) Create(ctx context.Context, p *domain.Prospect) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prospects
			(id, campaign_id, name, job_title, company, linkedin_url, status,
			 raw_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`, p.ID, p.CampaignID, p.Name, p.JobTitle, p.Company, p.LinkedInURL,
		p.Status, nullableJSON(p.RawData))
	if err != nil {
		return "", fmt.Errorf("create prospect: %w", err)
	}
	return p.ID, nil
}

// BulkInsert inserts a discovery batch in one statement and returns the
// number of rows written.
func (r *ProspectRepo) BulkInsert(ctx context.Context, prospects []domain.Prospect) (int, error) {
	if len(prospects) == 0 {
		return 0, nil
	}

	q := `INSERT INTO prospects
		(id, campaign_id, name, job_title, company, linkedin_url, status, raw_data, created_at, updated_at)
	VALUES `
	args := make([]interface{}, 0, len(prospects)*8)
	for i, p := range prospects {
		if i > 0 {
			q += ", "
		}
		base := i * 8
		q += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, NOW(), NOW())",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		args = append(args, id, p.CampaignID, p.Name, p.JobTitle, p.Company,
			p.LinkedInURL, p.Status, nullableJSON(p.RawData))
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk insert prospects: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *ProspectRepo) UpdateStatus(ctx context.Context, id string, status domain.ProspectStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE prospects SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update prospect status: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return campaign.ErrProspectNotFound
	}
	return nil
}

// ListUnprocessed returns prospects whose enrichment flag is still unset,
// oldest first, up to limit.
func (r *ProspectRepo) ListUnprocessed(ctx context.Context, campaignID string, limit int) ([]domain.Prospect, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+prospectColumns+`
		FROM prospects
		WHERE campaign_id = $1 AND ai_processed IS NULL
		ORDER BY created_at ASC
		LIMIT $2
	`, campaignID, limit)
	if err != nil {
		return nil, fmt.Errorf("list unprocessed prospects: %w", err)
	}
	defer rows.Close()

	var out []domain.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// MarkProcessed sets the enrichment flag and stores the insight. The flag is
// set even for error-marker insights so the prospect is never re-scanned.
func (r *ProspectRepo) MarkProcessed(ctx context.Context, prospectID string, insight *domain.Insight) error {
	var insights interface{}
	if insight != nil {
		b, err := json.Marshal(insight)
		if err != nil {
			return fmt.Errorf("marshal insight: %w", err)
		}
		insights = b
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE prospects SET ai_processed = true, ai_insights = $1, updated_at = NOW()
		WHERE id = $2
	`, insights, prospectID)
	if err != nil {
		return fmt.Errorf("mark prospect processed: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return campaign.ErrProspectNotFound
	}
	return nil
}

// nullableJSON maps empty raw JSON to SQL NULL instead of an empty string,
// which jsonb columns reject.
func nullableJSON(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
