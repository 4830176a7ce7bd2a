// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package chatbot

import (
	"context"
	"fmt"
	"time"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// Completer is the LLM surface the chatbot depends on.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Service produces advisory answers. The LLM is optional; without it
// every agricultural question is answered from the knowledge templates.
type Service struct {
	llm Completer
	now func() time.Time
}

// NewService creates the chatbot. Pass a nil Completer when no LLM is
// configured.
func NewService(llm Completer) *Service {
	return &Service{
		llm: llm,
		now: time.Now,
	}
}

// Advise answers one chat question. Non-agricultural questions get the
// redirect answer; agricultural ones go to the LLM first when available
// and fall back to the knowledge templates on failure.
func (s *Service) Advise(ctx context.Context, req *models.ChatRequest) *models.ChatResponse {
	now := s.now()
	category := Categorize(req.Question)

	if category == "non_agricultural" {
		metrics.ChatResponsesTotal.WithLabelValues("redirect").Inc()
		return &models.ChatResponse{
			Response:         redirectAnswer(req.Question),
			AIService:        "Agricultural Assistant",
			Confidence:       "high",
			QuestionCategory: category,
			Timestamp:        now,
		}
	}

	actx := newAdvisoryContext(req.Location, now)

	if s.llm != nil {
		answer, err := s.llm.Complete(ctx, buildPrompt(req, actx))
		if err == nil {
			metrics.ChatResponsesTotal.WithLabelValues("openrouter").Inc()
			return &models.ChatResponse{
				Response:         answer,
				AIService:        fmt.Sprintf("OpenRouter (%s)", s.llm.Model()),
				Confidence:       "high",
				QuestionCategory: category,
				Timestamp:        now,
			}
		}
		logging.Warn().Err(err).Msg("LLM advice failed, using knowledge templates")
	}

	metrics.ChatResponsesTotal.WithLabelValues("template").Inc()
	return &models.ChatResponse{
		Response:         templateAnswer(req.Question, actx),
		AIService:        "Agricultural Knowledge Base",
		Confidence:       "medium",
		QuestionCategory: category,
		Timestamp:        now,
	}
}

// buildPrompt frames the question with the farmer's context for the LLM.
func buildPrompt(req *models.ChatRequest, actx advisoryContext) string {
	prompt := fmt.Sprintf("Farmer context: location %s, current season %s.", actx.Location, actx.Season)
	if req.Language != "" {
		prompt += fmt.Sprintf(" Respond in %s.", req.Language)
	}
	return prompt + "\n\nQuestion: " + req.Question
}
