package enrichment

import (
	"encoding/json"
	"fmt"

	"github.com/ignite/linkedin-outreach/internal/domain"
)

const insightSystem = "You analyze LinkedIn prospects for sales outreach. Always respond with valid JSON."

const analyzeSystem = "You extract concise, actionable insights from a LinkedIn profile for sales outreach."

func buildInsightPrompt(p domain.Prospect) string {
	raw := "{}"
	if len(p.RawData) > 0 {
		raw = string(p.RawData)
	}
	return fmt.Sprintf(`Analyze this LinkedIn prospect for sales outreach:

Name: %s
Title: %s
Company: %s
Profile Data: %s

Provide a JSON response with:
- personality_traits: array of 3-5 key personality insights
- engagement_score: number 0-100 (likelihood to engage)
- pain_points: array of potential business challenges they face
- recommended_approach: optimal outreach strategy
- personalized_hooks: array of 2-3 conversation starters
- best_contact_time: when to reach out (day/time preference)
- decision_maker_score: number 0-100 (authority level)
- ai_summary: brief 2-sentence prospect summary

Be concise and actionable.`, p.Name, p.JobTitle, p.Company, raw)
}

func buildAnalyzePrompt(profileData string, campaignContext any) string {
	ctxJSON, _ := json.Marshal(campaignContext)
	return fmt.Sprintf("Profile Data:\n%s\n\nCampaign Context:\n%s\n\nReturn a compact JSON with: personalityInsights[], recentActivity[], commonInterests[], recommendedApproach, engagementScore (0-100), bestContactTime, personalizedHooks[].",
		profileData, string(ctxJSON))
}

// fallbackInsight is the fixed insight substituted when a model response
// cannot be parsed. Tagged with InsightSourceFallback so downstream readers
// can tell it apart from a real model insight.
func fallbackInsight(p domain.Prospect) domain.Insight {
	return domain.Insight{
		ProspectID:          p.ID,
		PersonalityTraits:   []string{"Professional", "Results-oriented", "Analytical"},
		EngagementScore:     70,
		PainPoints:          []string{"Scaling challenges", "Resource optimization"},
		RecommendedApproach: "Professional, data-driven approach",
		PersonalizedHooks:   []string{"Industry insights", "Growth strategies"},
		BestContactTime:     "Tuesday-Thursday 9-11 AM",
		DecisionMakerScore:  75,
		AISummary:           fmt.Sprintf("%s is a %s at %s with strong leadership potential.", p.Name, p.JobTitle, p.Company),
		Source:              domain.InsightSourceFallback,
	}
}

// staticAnalysis is the no-backend analyze-profile response.
func staticAnalysis() map[string]any {
	return map[string]any{
		"personalityInsights": []string{"Curious professional"},
		"recentActivity":      []string{},
		"commonInterests":     []string{},
		"recommendedApproach": "Friendly, concise",
		"engagementScore":     75,
		"bestContactTime":     "Mid-week mornings",
		"personalizedHooks":   []string{},
	}
}
