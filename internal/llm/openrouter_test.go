// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package llm

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
)

func testChatConfig(baseURL string) *config.ChatConfig {
	return &config.ChatConfig{
		OpenRouterAPIKey: "sk-or-v1-test-key",
		Model:            "x-ai/grok-4-fast:free",
		BaseURL:          baseURL,
		Timeout:          5 * time.Second,
	}
}

func TestNewClientRejectsBadKeys(t *testing.T) {
	cases := []string{"", "not-a-key", "sk-other-prefix"}
	for _, key := range cases {
		cfg := testChatConfig("https://openrouter.ai/api/v1")
		cfg.OpenRouterAPIKey = key
		if _, err := NewClient(cfg); !errors.Is(err, ErrNotConfigured) {
			t.Errorf("NewClient with key %q: err = %v, want ErrNotConfigured", key, err)
		}
	}
}

func TestCompleteSendsExpectedRequest(t *testing.T) {
	var captured completionRequest
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Use urea in split doses."}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testChatConfig(server.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	answer, err := client.Complete(t.Context(), "How much urea for wheat?")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if answer != "Use urea in split doses." {
		t.Errorf("unexpected answer %q", answer)
	}

	if auth != "Bearer sk-or-v1-test-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if captured.Model != "x-ai/grok-4-fast:free" {
		t.Errorf("model = %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Errorf("unexpected messages %+v", captured.Messages)
	}
	if captured.Messages[1].Content != "How much urea for wheat?" {
		t.Errorf("user content = %q", captured.Messages[1].Content)
	}
}

func TestCompleteErrorStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(testChatConfig(server.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Complete(t.Context(), "question"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(testChatConfig(server.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Complete(t.Context(), "question"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
	}))
	defer server.Close()

	client, err := NewClient(testChatConfig(server.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.Complete(t.Context(), "question")
	if err == nil || err.Error() == "" {
		t.Fatal("expected API error to surface")
	}
}
