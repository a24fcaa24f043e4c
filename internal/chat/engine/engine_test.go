package engine

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestEchoRepeatsLastMessage(t *testing.T) {
	e := NewEcho()
	got, err := e.GenerateText(context.Background(), []Message{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "Echo: first"},
		{Role: "user", Content: "hello pet"},
	}, GenerateOptions{})
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "Echo: hello pet" {
		t.Fatalf("GenerateText: got %q", got)
	}
}

func TestEchoWithoutMessages(t *testing.T) {
	got, err := NewEcho().GenerateText(context.Background(), nil, GenerateOptions{})
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "Echo: " {
		t.Fatalf("GenerateText: got %q", got)
	}
}

func TestEchoHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewEcho().GenerateText(ctx, nil, GenerateOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNewSelectsEngine(t *testing.T) {
	e, err := New(Config{})
	if err != nil {
		t.Fatalf("New(default): %v", err)
	}
	if _, ok := e.(*Echo); !ok {
		t.Fatalf("New(default): expected echo engine, got %T", e)
	}
	if _, err := New(Config{Kind: "openai"}); err == nil {
		t.Fatalf("New(openai) without key or base url should fail")
	}
	e, err = New(Config{Kind: "openai", BaseURL: "http://localhost:11434/v1", Model: "llama3"})
	if err != nil {
		t.Fatalf("New(openai): %v", err)
	}
	if o, ok := e.(*OpenAI); !ok || o.model != "llama3" {
		t.Fatalf("New(openai): unexpected engine %T", e)
	}
	if _, err := New(Config{Kind: "bogus"}); err == nil {
		t.Fatalf("New(bogus) should fail")
	}
}

func TestToOpenAIMessagesNormalizesRoles(t *testing.T) {
	out := toOpenAIMessages([]Message{{Role: "Assistant", Content: "a"}, {Role: "pet", Content: "b"}})
	if out[0].Role != openai.ChatMessageRoleAssistant || out[1].Role != openai.ChatMessageRoleUser {
		t.Fatalf("unexpected roles: %+v", out)
	}
}
