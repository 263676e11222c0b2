package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/akademix/backend/internal/domain"
)

const testJWTSecret = "test-secret"

// env wires every service over a single shared in-memory store, the same
// way cmd/server wires them over postgres.
type env struct {
	store     *memStore
	auth      *AuthService
	users     *UserService
	follows   *FollowService
	pubs      *PublicationService
	comments  *CommentService
	reactions *ReactionService
}

func newEnv() *env {
	store := newMemStore()
	userRepo := fakeUserRepo{store}
	followRepo := fakeFollowRepo{store}
	pubRepo := fakePublicationRepo{store}
	commentRepo := fakeCommentRepo{store}

	return &env{
		store:     store,
		auth:      NewAuthService(userRepo, testJWTSecret, time.Hour),
		users:     NewUserService(userRepo, followRepo, pubRepo),
		follows:   NewFollowService(followRepo, userRepo),
		pubs:      NewPublicationService(pubRepo, userRepo, store),
		comments:  NewCommentService(commentRepo, pubRepo, userRepo),
		reactions: NewReactionService(store, userRepo, pubRepo, commentRepo),
	}
}

func (e *env) addUser(t *testing.T, name, email string) *domain.User {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), RegisterInput{
		Name:     name,
		Email:    email,
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	return resp.User
}

func (e *env) addPublication(t *testing.T, authorID uuid.UUID, title, content string) *domain.Publication {
	t.Helper()
	pub, err := e.pubs.Create(context.Background(), authorID, PublicationInput{
		Title:   title,
		Content: content,
	})
	require.NoError(t, err)
	return pub
}

func (e *env) addComment(t *testing.T, authorID, publicationID uuid.UUID, content string) *domain.Comment {
	t.Helper()
	comment, err := e.comments.Create(context.Background(), authorID, publicationID, CommentInput{Content: content})
	require.NoError(t, err)
	return comment
}

// recordNotifier captures notifier calls for assertions.
type recordNotifier struct {
	created  []uuid.UUID
	deleted  []uuid.UUID
	liked    []uuid.UUID
	comments []uuid.UUID
}

func (n *recordNotifier) PublicationCreated(pub *domain.Publication) {
	n.created = append(n.created, pub.ID)
}

func (n *recordNotifier) PublicationDeleted(publicationID uuid.UUID) {
	n.deleted = append(n.deleted, publicationID)
}

func (n *recordNotifier) PublicationLiked(publicationID, _ uuid.UUID) {
	n.liked = append(n.liked, publicationID)
}

func (n *recordNotifier) CommentCreated(comment *domain.Comment) {
	n.comments = append(n.comments, comment.ID)
}
