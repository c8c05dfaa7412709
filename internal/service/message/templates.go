package message

import (
	"fmt"
	"math/rand"

	"github.com/osteele/liquid"

	"github.com/ignite/linkedin-outreach/internal/domain"
)

// Static outreach templates, one set per message type. Rendered with the
// liquid engine against prospect and campaign bindings.
var templateSources = map[domain.MessageType][]string{
	domain.MessageConnection: {
		`Hi {{ prospect.name }}, I noticed your experience in {{ campaign.target_industry }} at {{ prospect.company }}. I work with companies like yours helping with {{ campaign.product_service }}. Would love to connect and share some insights!`,
		`Hello {{ prospect.name }}, your background in {{ prospect.job_title }} caught my attention. I specialize in helping {{ campaign.target_industry }} companies with {{ campaign.product_service }}. Let's connect!`,
		`Hi {{ prospect.name }}, saw your recent post about {{ campaign.target_industry }}. I help companies like {{ prospect.company }} with {{ campaign.product_service }}. Would be great to connect and exchange ideas!`,
	},
	domain.MessageFollowUp1: {
		`Hi {{ prospect.name }}, I sent a connection request last week about {{ campaign.product_service }}. Just wanted to follow up - would you be interested in a quick 15-minute chat about how we're helping {{ campaign.target_industry }} companies?`,
		`Hello {{ prospect.name }}, following up on my connection request. I've been working with similar {{ prospect.job_title }}s in {{ campaign.target_industry }} on {{ campaign.product_service }}. Would love to share some insights with you.`,
	},
	domain.MessageFollowUp2: {
		`Hi {{ prospect.name }}, I know you're busy, but wanted to share a quick success story. We recently helped a {{ campaign.target_industry }} company similar to {{ prospect.company }} achieve great results with {{ campaign.product_service }}. Interested in learning more?`,
		`Hello {{ prospect.name }}, just wanted to reach out one more time about {{ campaign.product_service }}. If now isn't the right time, I completely understand. Feel free to reach out when it makes sense for you.`,
	},
	domain.MessageFollowUp3: {
		`Hi {{ prospect.name }}, this will be my last message. I really believe {{ campaign.product_service }} could benefit {{ prospect.company }}. If you're ever interested in learning more, feel free to reach out. Best of luck with your {{ campaign.target_industry }} initiatives!`,
	},
}

// TemplateSet holds the parsed static templates.
type TemplateSet struct {
	templates map[domain.MessageType][]*liquid.Template
}

// NewTemplateSet parses all static templates eagerly so a bad template is a
// startup error, not a per-request one.
func NewTemplateSet() (*TemplateSet, error) {
	engine := liquid.NewEngine()
	parsed := make(map[domain.MessageType][]*liquid.Template, len(templateSources))
	for typ, sources := range templateSources {
		for _, src := range sources {
			tpl, err := engine.ParseString(src)
			if err != nil {
				return nil, fmt.Errorf("parsing %s template: %w", typ, err)
			}
			parsed[typ] = append(parsed[typ], tpl)
		}
	}
	return &TemplateSet{templates: parsed}, nil
}

// Render picks one of the type's templates and renders it against the
// prospect and campaign.
func (t *TemplateSet) Render(typ domain.MessageType, p domain.Prospect, c domain.Campaign, rng *rand.Rand) (string, error) {
	typ = domain.NormalizeMessageType(typ)
	candidates := t.templates[typ]
	tpl := candidates[rng.Intn(len(candidates))]

	out, err := tpl.RenderString(map[string]interface{}{
		"prospect": map[string]interface{}{
			"name":      p.Name,
			"job_title": p.JobTitle,
			"company":   p.Company,
		},
		"campaign": map[string]interface{}{
			"target_industry": c.TargetIndustry,
			"product_service": c.ProductService,
			"outreach_goal":   c.OutreachGoal,
		},
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s template: %w", typ, err)
	}
	return out, nil
}
