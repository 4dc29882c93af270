package provider

import (
	"errors"
	"testing"

	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/llm/gemini"
	"github.com/joseph-ayodele/ftw-report/internal/llm/openai"
)

func TestNew(t *testing.T) {
	fx, err := New(common.LLMConfig{Provider: "gemini", APIKey: "k"}, nil)
	if err != nil {
		t.Fatalf("New(gemini) error = %v", err)
	}
	if _, ok := fx.(*gemini.Client); !ok {
		t.Fatalf("New(gemini) = %T", fx)
	}

	fx, err = New(common.LLMConfig{Provider: "openai", APIKey: "k"}, nil)
	if err != nil {
		t.Fatalf("New(openai) error = %v", err)
	}
	if _, ok := fx.(*openai.Client); !ok {
		t.Fatalf("New(openai) = %T", fx)
	}

	if _, err := New(common.LLMConfig{Provider: "claude"}, nil); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("New(claude) error = %v, want ErrInvalidInput", err)
	}
}
