// Package provider picks the extraction oracle client for the configured LLM provider.
package provider

import (
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/llm"
	"github.com/joseph-ayodele/ftw-report/internal/llm/gemini"
	"github.com/joseph-ayodele/ftw-report/internal/llm/openai"
)

// New returns the FieldExtractor for cfg.Provider.
func New(cfg common.LLMConfig, logger *slog.Logger) (llm.FieldExtractor, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewClient(gemini.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger), nil
	case "openai":
		return openai.NewClient(openai.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger), nil
	default:
		return nil, common.NewAppError(common.CodeConfig, fmt.Sprintf("unsupported LLM_PROVIDER %q", cfg.Provider), common.ErrInvalidInput)
	}
}
