package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around", `Sure! Here you go: {"a":1} hope that helps`, `{"a":1}`, true},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`, true},
		{"nested braces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`, true},
		{"no object", "nothing here", "", false},
		{"reversed braces", "} {", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ExtractJSON(c.in)
			if ok != c.ok || got != c.want {
				t.Errorf("ExtractJSON(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestChainPicksFirstAvailable(t *testing.T) {
	openai := NewOpenAI("", "gpt-4o-mini", time.Second)
	hf := NewHuggingFace("hf-key", "mistralai/Mistral-7B-Instruct-v0.3", time.Second)

	chain := NewChain(openai, hf)
	picked, ok := chain.Pick()
	if !ok || picked.Name() != "huggingface" {
		t.Fatalf("picked %v, want huggingface", picked)
	}

	chain = NewChain(NewOpenAI("sk-x", "gpt-4o-mini", time.Second), hf)
	picked, _ = chain.Pick()
	if picked.Name() != "openai" {
		t.Fatalf("picked %s, want openai", picked.Name())
	}
}

func TestChainNoBackend(t *testing.T) {
	chain := NewChain(NewOpenAI("", "m", time.Second), NewHuggingFace("", "m", time.Second))
	if chain.Available() {
		t.Fatal("chain reported available with no credentials")
	}
	if _, err := chain.Generate(context.Background(), "s", "p"); err != ErrNoBackend {
		t.Fatalf("err = %v, want ErrNoBackend", err)
	}
}

func TestOpenAIGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("auth = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "  generated text  "}},
			},
		})
	}))
	defer srv.Close()

	o := NewOpenAI("sk-test", "gpt-4o-mini", time.Second)
	o.SetBaseURL(srv.URL)
	got, err := o.Generate(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "generated text" {
		t.Errorf("got %q", got)
	}
}

func TestHuggingFaceGenerateArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/mistralai/Mistral-7B-Instruct-v0.3" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"generated_text": "prompt echo Assistant: the reply"},
		})
	}))
	defer srv.Close()

	h := NewHuggingFace("hf-test", "mistralai/Mistral-7B-Instruct-v0.3", time.Second)
	h.SetBaseURL(srv.URL)
	got, err := h.Generate(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "the reply" {
		t.Errorf("got %q", got)
	}
}

func TestHuggingFaceGenerateObjectShape(t *testing.T) {
	if got, err := parseHFGeneratedText([]byte(`{"generated_text":"hello"}`)); err != nil || got != "hello" {
		t.Errorf("parse object shape: %q, %v", got, err)
	}
	if _, err := parseHFGeneratedText([]byte(`"weird"`)); err == nil {
		t.Error("expected error for unrecognized shape")
	}
}
