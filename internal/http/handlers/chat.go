package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/http/response"
	"github.com/yungbote/petpal-backend/internal/observability"
	"github.com/yungbote/petpal-backend/internal/services"
)

type ChatHandler struct {
	chat       services.ChatService
	metrics    *observability.Metrics
	engineName string
}

func NewChatHandler(chat services.ChatService, metrics *observability.Metrics, engineName string) *ChatHandler {
	if engineName == "" {
		engineName = "echo"
	}
	return &ChatHandler{chat: chat, metrics: metrics, engineName: engineName}
}

// POST /api/chat
// body: { "messages": [{ "role", "content" }, ...] }; other fields are ignored.
func (ch *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	if !bindJSON(c, &req) {
		return
	}
	msgs := make([]services.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, services.ChatMessage{Role: m.Role, Content: contentText(m.Content)})
	}
	reply, err := ch.chat.Reply(c.Request.Context(), msgs)
	if err != nil {
		ch.metrics.IncChatReply(ch.engineName, "error")
		response.RespondAPIError(c, err)
		return
	}
	ch.metrics.IncChatReply(ch.engineName, "ok")
	response.RespondOK(c, reply)
}

// contentText returns string content as is and any other JSON value in its
// compact encoded form.
func contentText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
