package engine

import (
	"context"
	"fmt"
	"strings"
)

type Message struct {
	Role    string
	Content string
}

type GenerateOptions struct {
	Temperature float64
}

type Engine interface {
	GenerateText(ctx context.Context, messages []Message, opts GenerateOptions) (string, error)
}

const (
	KindEcho   = "echo"
	KindOpenAI = "openai"
)

type Config struct {
	Kind    string
	APIKey  string
	BaseURL string
	Model   string
}

// New builds the engine named by cfg.Kind; empty means echo.
func New(cfg Config) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", KindEcho:
		return NewEcho(), nil
	case KindOpenAI:
		return NewOpenAI(cfg)
	default:
		return nil, fmt.Errorf("unknown chat engine %q", cfg.Kind)
	}
}
