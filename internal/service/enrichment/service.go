package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ignite/linkedin-outreach/internal/ai"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/pkg/logger"
)

const defaultBatchSize = 10

// Sentinel errors for the enrichment service. Handlers map missing input to
// 400 and missing configuration to 500.
var (
	ErrMissingCampaignID = errors.New("campaignId is required")
	ErrNotConfigured     = errors.New("missing configuration")
)

// ProspectStore is the prospect access enrichment needs.
type ProspectStore interface {
	// ListUnprocessed returns prospects in the campaign whose enrichment
	// flag is unset, up to limit.
	ListUnprocessed(ctx context.Context, campaignID string, limit int) ([]domain.Prospect, error)

	// MarkProcessed sets the enrichment flag and stores the insight.
	// Called exactly once per prospect per enrichment pass.
	MarkProcessed(ctx context.Context, prospectID string, insight *domain.Insight) error
}

// Service generates insight objects for prospects.
type Service struct {
	store ProspectStore
	gen   *ai.Chain
}

// NewService creates an enrichment service.
func NewService(store ProspectStore, gen *ai.Chain) *Service {
	return &Service{store: store, gen: gen}
}

// Result reports one enrichment pass.
type Result struct {
	Message   string           `json:"message"`
	Processed int              `json:"processed"`
	Insights  []domain.Insight `json:"insights"`
}

// ProcessCampaign enriches up to batchSize unprocessed prospects in the
// campaign, strictly sequentially. Individual failures are non-fatal: the
// prospect is marked processed with an error-tagged insight and the batch
// continues.
func (s *Service) ProcessCampaign(ctx context.Context, campaignID string, batchSize int) (*Result, error) {
	if campaignID == "" {
		return nil, ErrMissingCampaignID
	}
	// A missing credential is a deployment problem, not a per-prospect
	// failure: bail before any prospect gets marked processed.
	if !s.gen.Available() {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY or HF_API_KEY", ErrNotConfigured)
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	prospects, err := s.store.ListUnprocessed(ctx, campaignID, batchSize)
	if err != nil {
		return nil, fmt.Errorf("listing unprocessed prospects: %w", err)
	}
	if len(prospects) == 0 {
		return &Result{Message: "No unprocessed prospects found", Insights: []domain.Insight{}}, nil
	}

	out := &Result{Insights: []domain.Insight{}}
	for _, p := range prospects {
		insight, err := s.enrichOne(ctx, p)
		if err != nil {
			logger.Error("enrichment failed", "prospect_id", p.ID, "err", err)
			marker := domain.Insight{ProspectID: p.ID, Source: domain.InsightSourceError, AISummary: "Processing failed"}
			if mErr := s.store.MarkProcessed(ctx, p.ID, &marker); mErr != nil {
				logger.Error("marking failed prospect", "prospect_id", p.ID, "err", mErr)
			}
			continue
		}

		if err := s.store.MarkProcessed(ctx, p.ID, &insight); err != nil {
			logger.Error("marking processed prospect", "prospect_id", p.ID, "err", err)
			continue
		}
		out.Insights = append(out.Insights, insight)
	}

	out.Processed = len(out.Insights)
	out.Message = fmt.Sprintf("Successfully processed %d prospects", out.Processed)
	return out, nil
}

// enrichOne calls the model and parses the insight. Parse failures recover
// to the static fallback and are never surfaced as errors.
func (s *Service) enrichOne(ctx context.Context, p domain.Prospect) (domain.Insight, error) {
	text, err := s.gen.Generate(ctx, insightSystem, buildInsightPrompt(p))
	if err != nil {
		return domain.Insight{}, err
	}
	return parseInsight(text, p), nil
}

// parseInsight locates and decodes the JSON object inside the model's
// response. The result is tagged with its source so a degraded fallback
// insight is distinguishable from a parsed one.
func parseInsight(text string, p domain.Prospect) domain.Insight {
	raw, ok := ai.ExtractJSON(text)
	if !ok {
		return fallbackInsight(p)
	}

	var parsed struct {
		PersonalityTraits   []string `json:"personality_traits"`
		EngagementScore     int      `json:"engagement_score"`
		PainPoints          []string `json:"pain_points"`
		RecommendedApproach string   `json:"recommended_approach"`
		PersonalizedHooks   []string `json:"personalized_hooks"`
		BestContactTime     string   `json:"best_contact_time"`
		DecisionMakerScore  int      `json:"decision_maker_score"`
		AISummary           string   `json:"ai_summary"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fallbackInsight(p)
	}

	insight := domain.Insight{
		ProspectID:          p.ID,
		PersonalityTraits:   parsed.PersonalityTraits,
		EngagementScore:     parsed.EngagementScore,
		PainPoints:          parsed.PainPoints,
		RecommendedApproach: parsed.RecommendedApproach,
		PersonalizedHooks:   parsed.PersonalizedHooks,
		BestContactTime:     parsed.BestContactTime,
		DecisionMakerScore:  parsed.DecisionMakerScore,
		AISummary:           parsed.AISummary,
		Source:              domain.InsightSourceModel,
	}
	if insight.PersonalityTraits == nil {
		insight.PersonalityTraits = []string{}
	}
	if insight.PainPoints == nil {
		insight.PainPoints = []string{}
	}
	if insight.PersonalizedHooks == nil {
		insight.PersonalizedHooks = []string{}
	}
	if insight.EngagementScore == 0 {
		insight.EngagementScore = 70
	}
	if insight.DecisionMakerScore == 0 {
		insight.DecisionMakerScore = 70
	}
	if insight.RecommendedApproach == "" {
		insight.RecommendedApproach = "Professional approach"
	}
	if insight.BestContactTime == "" {
		insight.BestContactTime = "Weekday mornings"
	}
	if insight.AISummary == "" {
		insight.AISummary = fmt.Sprintf("Professional contact at %s", p.Company)
	}
	return insight
}

// AnalyzeProfile produces an ad-hoc analysis of raw profile text against a
// campaign context. With no backend configured it returns a static analysis;
// unparseable responses come back as {"raw": text}.
func (s *Service) AnalyzeProfile(ctx context.Context, profileData string, campaignContext any) (map[string]any, error) {
	if !s.gen.Available() {
		return staticAnalysis(), nil
	}

	text, err := s.gen.Generate(ctx, analyzeSystem, buildAnalyzePrompt(profileData, campaignContext))
	if err != nil {
		return nil, err
	}

	raw, ok := ai.ExtractJSON(text)
	if ok {
		var analysis map[string]any
		if err := json.Unmarshal([]byte(raw), &analysis); err == nil {
			return analysis, nil
		}
	}
	return map[string]any{"raw": text}, nil
}
