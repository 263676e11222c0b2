package ws

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akademix/backend/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) PublicationCreated(pub *domain.Publication) {
	evt, err := NewEvent(EventTypePublicationNew, PublicationPayload{Publication: pub.Summary()})
	if err != nil {
		n.hub.log.Error("ws notifier marshal failed", zap.Error(err))
		return
	}
	author := pub.AuthorID
	n.hub.Broadcast(evt, &author)
}

func (n *HubNotifier) PublicationDeleted(publicationID uuid.UUID) {
	evt, err := NewEvent(EventTypePublicationDeleted, PublicationDeletedPayload{ID: publicationID})
	if err != nil {
		n.hub.log.Error("ws notifier marshal failed", zap.Error(err))
		return
	}
	n.hub.Broadcast(evt, nil)
}

func (n *HubNotifier) PublicationLiked(publicationID, userID uuid.UUID) {
	evt, err := NewEvent(EventTypePublicationLiked, PublicationLikedPayload{
		PublicationID: publicationID,
		UserID:        userID,
	})
	if err != nil {
		n.hub.log.Error("ws notifier marshal failed", zap.Error(err))
		return
	}
	n.hub.Broadcast(evt, &userID)
}

func (n *HubNotifier) CommentCreated(comment *domain.Comment) {
	evt, err := NewEvent(EventTypeCommentNew, CommentPayload{Comment: *comment})
	if err != nil {
		n.hub.log.Error("ws notifier marshal failed", zap.Error(err))
		return
	}
	author := comment.AuthorID
	n.hub.Broadcast(evt, &author)
}
