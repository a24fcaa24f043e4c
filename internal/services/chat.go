package services

import (
	"context"
	"fmt"

	"github.com/yungbote/petpal-backend/internal/chat/engine"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

type ChatReply struct {
	Choices []ChatChoice `json:"choices"`
}

type ChatService interface {
	// Reply answers a conversation with a single assistant message.
	Reply(ctx context.Context, messages []ChatMessage) (*ChatReply, error)
}

type chatService struct {
	log    *logger.Logger
	engine engine.Engine
}

func NewChatService(log *logger.Logger, eng engine.Engine) ChatService {
	return &chatService{
		log:    log.With("service", "ChatService"),
		engine: eng,
	}
}

func (cs *chatService) Reply(ctx context.Context, messages []ChatMessage) (*ChatReply, error) {
	in := make([]engine.Message, 0, len(messages))
	for _, m := range messages {
		in = append(in, engine.Message{Role: m.Role, Content: m.Content})
	}
	text, err := cs.engine.GenerateText(ctx, in, engine.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}
	return &ChatReply{
		Choices: []ChatChoice{{Message: ChatMessage{Role: "assistant", Content: text}}},
	}, nil
}
