// Package ai provides text generation over an ordered list of
// capability-checked language-model backends. Backend selection is driven by
// configuration presence, never by runtime failure: the first configured
// backend is used and its errors propagate to the caller.
package ai

import (
	"context"
	"errors"
)

// ErrNoBackend is returned when no backend has credentials configured.
var ErrNoBackend = errors.New("no language-model backend configured")

// Generator produces free-form text from a system instruction and a prompt.
type Generator interface {
	// Name identifies the backend in logs.
	Name() string
	// Available reports whether the backend's credential is configured.
	Available() bool
	// Generate returns the model's raw text response.
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Chain tries backends in the order given, using the first available one.
type Chain struct {
	backends []Generator
}

// NewChain builds a chain from the given backends.
func NewChain(backends ...Generator) *Chain {
	return &Chain{backends: backends}
}

// Pick returns the first available backend, or false when none is configured.
func (c *Chain) Pick() (Generator, bool) {
	for _, b := range c.backends {
		if b.Available() {
			return b, true
		}
	}
	return nil, false
}

// Available reports whether any backend is configured.
func (c *Chain) Available() bool {
	_, ok := c.Pick()
	return ok
}

// Generate runs the first available backend. Returns ErrNoBackend when the
// chain is empty of configured backends.
func (c *Chain) Generate(ctx context.Context, system, prompt string) (string, error) {
	b, ok := c.Pick()
	if !ok {
		return "", ErrNoBackend
	}
	return b.Generate(ctx, system, prompt)
}
