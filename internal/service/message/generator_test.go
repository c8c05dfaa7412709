package message

import (
	"context"
	"strings"
	"testing"

	"github.com/ignite/linkedin-outreach/internal/ai"
	"github.com/ignite/linkedin-outreach/internal/domain"
)

type fakeBackend struct {
	name       string
	available  bool
	response   string
	err        error
	lastPrompt string
}

func (f *fakeBackend) Name() string    { return f.name }
func (f *fakeBackend) Available() bool { return f.available }
func (f *fakeBackend) Generate(_ context.Context, _, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func testProspect() domain.Prospect {
	return domain.Prospect{Name: "Jane Doe", JobTitle: "CTO", Company: "Acme"}
}

func testCampaign(voice string) domain.Campaign {
	return domain.Campaign{
		ProductService: "an analytics platform",
		TargetIndustry: "SaaS",
		OutreachGoal:   "book a demo",
		BrandVoice:     voice,
	}
}

func TestGenerateUsesBackendWhenAvailable(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, response: "Hi Jane, loved your work at Acme!"}
	gen, err := NewGenerator(ai.NewChain(backend))
	if err != nil {
		t.Fatal(err)
	}

	out, err := gen.Generate(context.Background(), Input{
		Prospect: testProspect(),
		Campaign: testCampaign(""),
		Type:     domain.MessageConnection,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Message != "Hi Jane, loved your work at Acme!" {
		t.Errorf("message = %q", out.Message)
	}
	if !strings.Contains(backend.lastPrompt, "Jane Doe") || !strings.Contains(backend.lastPrompt, "CTO at Acme") {
		t.Errorf("prompt missing prospect details: %q", backend.lastPrompt)
	}
	if out.Confidence < 80 || out.Confidence > 99 {
		t.Errorf("confidence = %d, want 80..99", out.Confidence)
	}
	if out.PersonalizationScore < 70 || out.PersonalizationScore > 99 {
		t.Errorf("personalization = %d, want 70..99", out.PersonalizationScore)
	}
}

func TestGenerateFallsBackToTemplates(t *testing.T) {
	gen, err := NewGenerator(ai.NewChain(&fakeBackend{name: "fake", available: false}))
	if err != nil {
		t.Fatal(err)
	}

	out, err := gen.Generate(context.Background(), Input{
		Prospect: testProspect(),
		Campaign: testCampaign(""),
		Type:     domain.MessageConnection,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Message, "Jane Doe") {
		t.Errorf("template output missing prospect name: %q", out.Message)
	}
}

func TestGenerateFormalTone(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, response: "Hi Jane, great to connect!"}
	gen, err := NewGenerator(ai.NewChain(backend))
	if err != nil {
		t.Fatal(err)
	}

	out, err := gen.Generate(context.Background(), Input{
		Prospect: testProspect(),
		Campaign: testCampaign(domain.VoiceFormal),
		Type:     domain.MessageConnection,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Message != "Dear Jane, great to connect." {
		t.Errorf("message = %q", out.Message)
	}
}

func TestGenerateEnthusiasticTone(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, response: "Hi Jane, great to connect!"}
	gen, err := NewGenerator(ai.NewChain(backend))
	if err != nil {
		t.Fatal(err)
	}

	out, err := gen.Generate(context.Background(), Input{
		Prospect: testProspect(),
		Campaign: testCampaign(domain.VoiceEnthusiastic),
		Type:     domain.MessageConnection,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.Message, " 🚀") {
		t.Errorf("message = %q, want rocket suffix", out.Message)
	}
}

func TestGenerateUnknownTypeFallsBackToConnection(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, response: "Hello there"}
	gen, err := NewGenerator(ai.NewChain(backend))
	if err != nil {
		t.Fatal(err)
	}

	_, err = gen.Generate(context.Background(), Input{
		Prospect: testProspect(),
		Campaign: testCampaign(""),
		Type:     domain.MessageType("intro_blast"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(backend.lastPrompt, "connection request") {
		t.Errorf("prompt = %q, want connection request framing", backend.lastPrompt)
	}
}

func TestGenerateTemplateUnknownType(t *testing.T) {
	gen, err := NewGenerator(ai.NewChain())
	if err != nil {
		t.Fatal(err)
	}

	out, err := gen.Generate(context.Background(), Input{
		Prospect: testProspect(),
		Campaign: testCampaign(""),
		Type:     domain.MessageType("bogus"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Message == "" {
		t.Error("expected a rendered template for unknown type")
	}
}

func TestApplyTone(t *testing.T) {
	cases := []struct {
		voice string
		in    string
		want  string
	}{
		{domain.VoiceFormal, "Hi Jane! Great work!", "Dear Jane. Great work."},
		{domain.VoiceEnthusiastic, "Hi Jane", "Hi Jane 🚀"},
		{"casual", "Hi Jane!", "Hi Jane!"},
		{"", "Hi Jane!", "Hi Jane!"},
	}
	for _, c := range cases {
		if got := ApplyTone(c.in, c.voice); got != c.want {
			t.Errorf("ApplyTone(%q, %q) = %q, want %q", c.in, c.voice, got, c.want)
		}
	}
}
