package engine

import "context"

const EchoPrefix = "Echo: "

// Echo answers with the content of the last message. It stands in for a real
// model so the chat endpoint works without any external service.
type Echo struct{}

func NewEcho() *Echo { return &Echo{} }

func (e *Echo) GenerateText(ctx context.Context, messages []Message, _ GenerateOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(messages) == 0 {
		return EchoPrefix, nil
	}
	return EchoPrefix + messages[len(messages)-1].Content, nil
}
