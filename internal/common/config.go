package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	LLM          LLMConfig
	OCR          OCRConfig
	Organization OrganizationConfig
	Session      SessionConfig
	Export       ExportConfig
}

// LLMConfig holds extraction oracle configuration
type LLMConfig struct {
	Provider    string // "gemini" | "openai"
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	Strategy    string // "rules" | "directive"
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
}

// OrganizationConfig holds the fixed values stamped on every report.
type OrganizationConfig struct {
	Establishment string
	Phone         string
	Delegation    string
	Division      string
}

// SessionConfig holds the current-report store configuration
type SessionConfig struct {
	Path string
}

// ExportConfig holds export configuration
type ExportConfig struct {
	Dir string
}

// Default model per provider.
var defaultModels = map[string]string{
	"gemini": "gemini-2.5-flash",
	"openai": "gpt-4o-mini",
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", "gemini"))
	return &Config{
		LLM: LLMConfig{
			Provider:    provider,
			Model:       getEnv("LLM_MODEL", defaultModels[provider]),
			APIKey:      getEnv("LLM_API_KEY", os.Getenv("API_KEY")),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
			Strategy:    strings.ToLower(getEnv("EXTRACTION_STRATEGY", "rules")),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("OCR_PDFTOTEXT", "pdftotext"),
			Pdftoppm:      getEnv("OCR_PDFTOPPM", "pdftoppm"),
			Tesseract:     getEnv("OCR_TESSERACT", "tesseract"),
			TesseractLang: getEnv("OCR_LANG", "spa"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
		},
		Organization: OrganizationConfig{
			Establishment: getEnv("ORG_ESTABLISHMENT", "E.N.S. 2 EN L.VIVAS M. ACOSTA"),
			Phone:         getEnv("ORG_PHONE", "49317981"),
			Delegation:    getEnv("ORG_DELEGATION", "III"),
			Division:      getEnv("ORG_DIVISION", "3511"),
		},
		Session: SessionConfig{
			Path: getEnv("SESSION_DB", "./tmp/ftw-session.db"),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "."),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the settings every command needs.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Organization.Establishment) == "" {
		return NewAppError(CodeConfig, "ORG_ESTABLISHMENT must not be empty", ErrInvalidInput)
	}
	if c.Session.Path == "" {
		return NewAppError(CodeConfig, "SESSION_DB is required", ErrInvalidInput)
	}
	return nil
}

// ValidateLLM checks the settings needed to call the extraction oracle.
func (c *Config) ValidateLLM() error {
	if c.LLM.APIKey == "" {
		return NewAppError(CodeConfig, "LLM_API_KEY (or API_KEY) is required", ErrInvalidInput)
	}
	if _, ok := defaultModels[c.LLM.Provider]; !ok {
		return NewAppError(CodeConfig, fmt.Sprintf("unsupported LLM_PROVIDER %q", c.LLM.Provider), ErrInvalidInput)
	}
	switch c.LLM.Strategy {
	case "rules", "directive":
	default:
		return NewAppError(CodeConfig, fmt.Sprintf("unsupported EXTRACTION_STRATEGY %q", c.LLM.Strategy), ErrInvalidInput)
	}
	return nil
}
