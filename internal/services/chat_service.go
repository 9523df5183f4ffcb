package services

import (
	"bytes"
	"encoding/json"

	"skyrio/internal/config"
	"skyrio/internal/domain"
	"skyrio/internal/domain/models"
	"skyrio/internal/utils"

	"go.uber.org/zap"
)

var errMessagesRequired = domain.ValidationError{Msg: "messages required"}

// ChatService is the Atlas chat endpoint. No model is called yet: every
// accepted request gets the same configured reply.
type ChatService struct {
	Reply  string
	Logger *zap.Logger
}

func (s ChatService) reply() string {
	if s.Reply != "" {
		return s.Reply
	}
	return config.DefaultAtlasReply
}

// Respond validates the raw messages field and returns the placeholder reply.
// Missing, null and non-array values are all rejected the same way.
func (s ChatService) Respond(requestID string, messages json.RawMessage) (models.ChatReply, error) {
	trimmed := bytes.TrimSpace(messages)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return models.ChatReply{}, errMessagesRequired
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return models.ChatReply{}, domain.ValidationError{Msg: errMessagesRequired.Msg, Err: err}
	}

	utils.LogEvent(s.Logger, requestID, "atlas", "chat", "Atlas request received", zap.Int("messages", len(items)))
	return models.ChatReply{Reply: s.reply()}, nil
}
