package services

import (
	"context"
	"testing"

	"github.com/yungbote/petpal-backend/internal/chat/engine"
	"github.com/yungbote/petpal-backend/internal/data/repos/testutil"
)

func TestChatReplyEchoesLastMessage(t *testing.T) {
	svc := NewChatService(testutil.Logger(t), engine.NewEcho())

	reply, err := svc.Reply(context.Background(), []ChatMessage{
		{Role: "user", Content: "first"},
		{Role: "user", Content: "hello"},
	})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if len(reply.Choices) != 1 {
		t.Fatalf("want 1 choice, got %d", len(reply.Choices))
	}
	msg := reply.Choices[0].Message
	if msg.Role != "assistant" || msg.Content != "Echo: hello" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestChatReplyWithoutMessages(t *testing.T) {
	svc := NewChatService(testutil.Logger(t), engine.NewEcho())
	reply, err := svc.Reply(context.Background(), nil)
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Choices[0].Message.Content != "Echo: " {
		t.Fatalf("got %q", reply.Choices[0].Message.Content)
	}
}
