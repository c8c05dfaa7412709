package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co"

// HuggingFace generates text via the hosted inference API. It is the
// secondary backend, used when no OpenAI credential is configured.
type HuggingFace struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewHuggingFace creates the fallback inference backend.
func NewHuggingFace(apiKey, model string, timeout time.Duration) *HuggingFace {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &HuggingFace{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultHFBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetBaseURL overrides the API host (tests only).
func (h *HuggingFace) SetBaseURL(u string) { h.baseURL = strings.TrimRight(u, "/") }

func (h *HuggingFace) Name() string { return "huggingface" }

func (h *HuggingFace) Available() bool { return h.apiKey != "" }

func (h *HuggingFace) Generate(ctx context.Context, system, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"inputs": fmt.Sprintf("%s\n\nUser: %s\nAssistant:", system, prompt),
		"parameters": map[string]interface{}{
			"max_new_tokens":   800,
			"temperature":      0.3,
			"do_sample":        true,
			"return_full_text": false,
		},
	}

	body, _ := json.Marshal(reqBody)
	url := h.baseURL + "/models/" + h.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Hugging Face request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Hugging Face API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseHFGeneratedText(respBody)
}

// parseHFGeneratedText handles both response shapes the inference API emits:
// a bare object or a single-element array, each with a generated_text field.
// Chat-style responses may echo the prompt; anything before a trailing
// "Assistant:" marker is discarded.
func parseHFGeneratedText(respBody []byte) (string, error) {
	var arr []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBody, &arr); err == nil && len(arr) > 0 {
		return trimAssistantEcho(arr[0].GeneratedText), nil
	}

	var obj struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBody, &obj); err == nil && obj.GeneratedText != "" {
		return trimAssistantEcho(obj.GeneratedText), nil
	}
	return "", fmt.Errorf("unrecognized Hugging Face response: %s", string(respBody))
}

func trimAssistantEcho(s string) string {
	if idx := strings.LastIndex(s, "Assistant:"); idx >= 0 {
		s = s[idx+len("Assistant:"):]
	}
	return strings.TrimSpace(s)
}
