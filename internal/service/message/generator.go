package message

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ignite/linkedin-outreach/internal/ai"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/pkg/logger"
)

const generateSystem = "You write short, personalized LinkedIn outreach messages. Respond with the message text only, no preamble and no quotes."

// Generator produces outreach text.
type Generator struct {
	chain     *ai.Chain
	templates *TemplateSet
	rng       *rand.Rand
}

// NewGenerator creates a generator over the given backend chain. An empty
// chain is fine: the static templates always stand in.
func NewGenerator(chain *ai.Chain) (*Generator, error) {
	templates, err := NewTemplateSet()
	if err != nil {
		return nil, err
	}
	return &Generator{
		chain:     chain,
		templates: templates,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Input is one generation request.
type Input struct {
	Prospect        domain.Prospect    `json:"prospect"`
	Campaign        domain.Campaign    `json:"campaign"`
	Type            domain.MessageType `json:"messageType"`
	ProfileAnalysis map[string]any     `json:"profileAnalysis,omitempty"`
}

// Output is the generated message plus its scoring.
type Output struct {
	Message              string `json:"message"`
	Confidence           int    `json:"confidence"`
	PersonalizationScore int    `json:"personalizationScore"`
}

// Generate produces one message. The first configured language-model
// backend is used; with none configured the static templates apply.
// Unrecognized message types are treated as connection requests.
func (g *Generator) Generate(ctx context.Context, in Input) (*Output, error) {
	typ := domain.NormalizeMessageType(in.Type)

	var msg string
	if backend, ok := g.chain.Pick(); ok {
		text, err := backend.Generate(ctx, generateSystem, buildMessagePrompt(in, typ))
		if err != nil {
			return nil, fmt.Errorf("generating via %s: %w", backend.Name(), err)
		}
		msg = strings.Trim(strings.TrimSpace(text), `"`)
	} else {
		logger.Debug("no model backend configured, using static template", "type", string(typ))
		rendered, err := g.templates.Render(typ, in.Prospect, in.Campaign, g.rng)
		if err != nil {
			return nil, err
		}
		msg = rendered
	}

	msg = ApplyTone(msg, in.Campaign.BrandVoice)

	return &Output{
		Message:              msg,
		Confidence:           80 + g.rng.Intn(20),
		PersonalizationScore: 70 + g.rng.Intn(30),
	}, nil
}

func buildMessagePrompt(in Input, typ domain.MessageType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s LinkedIn message.\n\n", describeType(typ))
	fmt.Fprintf(&b, "Prospect: %s, %s at %s\n", in.Prospect.Name, in.Prospect.JobTitle, in.Prospect.Company)
	fmt.Fprintf(&b, "We sell: %s\n", in.Campaign.ProductService)
	fmt.Fprintf(&b, "Target industry: %s\n", in.Campaign.TargetIndustry)
	if in.Campaign.OutreachGoal != "" {
		fmt.Fprintf(&b, "Outreach goal: %s\n", in.Campaign.OutreachGoal)
	}
	if in.Campaign.BrandVoice != "" {
		fmt.Fprintf(&b, "Brand voice: %s\n", in.Campaign.BrandVoice)
	}
	if len(in.ProfileAnalysis) > 0 {
		analysis, _ := json.Marshal(in.ProfileAnalysis)
		fmt.Fprintf(&b, "Profile analysis: %s\n", analysis)
	}
	b.WriteString("\nKeep it under 300 characters and reference the prospect's role or company.")
	return b.String()
}

func describeType(typ domain.MessageType) string {
	switch typ {
	case domain.MessageFollowUp1:
		return "first follow-up"
	case domain.MessageFollowUp2:
		return "second follow-up"
	case domain.MessageFollowUp3:
		return "final follow-up"
	}
	return "connection request"
}
