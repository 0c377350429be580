package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mobile-order-be/internal/pkg/logger"
	"mobile-order-be/pkg/llm"
	"mobile-order-be/pkg/recommend/experiment"
)

const explanationTimeout = 2 * time.Second

type IExplanationService interface {
	// Phrase rewords a ranking explanation for display. It always returns a
	// usable string; model failures fall back to the raw explanation.
	Phrase(ctx context.Context, itemName, explanation, variant string) string
}

type explanationService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewExplanationService(provider llm.LLMProvider, log logger.ILogger) IExplanationService {
	return &explanationService{
		provider: provider,
		logger:   log,
	}
}

func (s *explanationService) Phrase(ctx context.Context, itemName, explanation, variant string) string {
	if s.provider == nil || variant == experiment.VariantControl || explanation == "" {
		return explanation
	}

	style := "a single short sentence"
	if variant == "detailed" {
		style = "one or two friendly sentences"
	}

	prompt := fmt.Sprintf(
		"Reword this menu recommendation reason as %s for a coffee ordering app. Item: %q. Reason: %q. Reply with only the reworded text.",
		style, itemName, explanation,
	)

	llmCtx, cancel := context.WithTimeout(ctx, explanationTimeout)
	defer cancel()

	out, err := s.provider.Generate(llmCtx, prompt, llm.WithTemperature(0.4), llm.WithMaxTokens(60))
	if err != nil {
		s.logger.Warn("explanation", "llm phrasing failed, using raw reason", map[string]interface{}{
			"item":  itemName,
			"error": err.Error(),
		})
		return explanation
	}

	out = strings.TrimSpace(strings.Trim(strings.TrimSpace(out), `"`))
	if out == "" {
		return explanation
	}
	return out
}
