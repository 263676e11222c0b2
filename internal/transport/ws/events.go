package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/akademix/backend/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypePublicationNew     = "publication.new"
	EventTypePublicationDeleted = "publication.deleted"
	EventTypePublicationLiked   = "publication.liked"
	EventTypeCommentNew         = "comment.new"
	EventTypePong               = "pong"
	EventTypeError              = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

// --- Server → Client payloads ---

type PublicationPayload struct {
	Publication domain.PublicationSummary `json:"publication"`
}

type PublicationDeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type PublicationLikedPayload struct {
	PublicationID uuid.UUID `json:"publication_id"`
	UserID        uuid.UUID `json:"user_id"`
}

type CommentPayload struct {
	Comment domain.Comment `json:"comment"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent builds an event envelope with a marshaled payload.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}
