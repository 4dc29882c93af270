package common

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_TIMEOUT", "")
	t.Setenv("ORG_PHONE", "")

	cfg := LoadConfig()
	if cfg.LLM.Provider != "gemini" {
		t.Fatalf("Provider = %q, want gemini", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Fatalf("Model = %q, want gemini-2.5-flash", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Fatalf("Timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.Organization.Phone != "49317981" {
		t.Fatalf("Organization.Phone = %q", cfg.Organization.Phone)
	}
	if cfg.OCR.TesseractLang != "spa" {
		t.Fatalf("OCR.TesseractLang = %q", cfg.OCR.TesseractLang)
	}
}

func TestLoadConfig_APIKeyFallback(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")

	cfg := LoadConfig()
	if cfg.LLM.APIKey != "legacy-key" {
		t.Fatalf("APIKey = %q, want legacy-key", cfg.LLM.APIKey)
	}
}

func TestValidateLLM_MissingKeyIsConfigError(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("API_KEY", "")

	err := LoadConfig().ValidateLLM()
	if err == nil {
		t.Fatal("ValidateLLM() error = nil, want config error")
	}
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != CodeConfig {
		t.Fatalf("ValidateLLM() error = %v, want %s", err, CodeConfig)
	}
}

func TestValidateLLM_RejectsUnknownStrategy(t *testing.T) {
	t.Setenv("LLM_API_KEY", "k")
	t.Setenv("EXTRACTION_STRATEGY", "magic")

	if err := LoadConfig().ValidateLLM(); err == nil {
		t.Fatal("ValidateLLM() error = nil for unknown strategy")
	}
}

func TestProcessingFailed_IsAndMessage(t *testing.T) {
	cause := errors.New("connection reset")
	err := ProcessingFailed(cause)

	if !errors.Is(err, ErrProcessingFailed) {
		t.Fatalf("errors.Is(err, ErrProcessingFailed) = false")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable from %v", err)
	}
	if got := UserMessage(err); got != ProcessingFailedMessage {
		t.Fatalf("UserMessage() = %q", got)
	}
}
