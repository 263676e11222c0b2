package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	e := newEnv()
	alice := e.addUser(t, "Alice", "alice@example.edu")
	bob := e.addUser(t, "Bob", "bob@example.edu")
	pub := e.addPublication(t, alice.ID, "Paper", "content")

	comment, err := e.comments.Create(context.Background(), bob.ID, pub.ID, CommentInput{Content: "great read"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", comment.AuthorName)
	assert.Equal(t, pub.ID, comment.PublicationID)

	// The publication's derived comment count reflects it immediately.
	details, err := e.pubs.GetDetails(context.Background(), pub.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 1, details.Comments)
}

func TestCreateCommentValidation(t *testing.T) {
	e := newEnv()
	alice := e.addUser(t, "Alice", "alice@example.edu")
	pub := e.addPublication(t, alice.ID, "Paper", "content")

	_, err := e.comments.Create(context.Background(), alice.ID, pub.ID, CommentInput{Content: "   "})
	assert.ErrorIs(t, err, ErrContentRequired)

	_, err = e.comments.Create(context.Background(), alice.ID, uuid.New(), CommentInput{Content: "orphan"})
	assert.ErrorIs(t, err, ErrPublicationNotFound)

	_, err = e.comments.Create(context.Background(), uuid.New(), pub.ID, CommentInput{Content: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateCommentOwnership(t *testing.T) {
	e := newEnv()
	alice := e.addUser(t, "Alice", "alice@example.edu")
	bob := e.addUser(t, "Bob", "bob@example.edu")
	pub := e.addPublication(t, alice.ID, "Paper", "content")
	comment := e.addComment(t, bob.ID, pub.ID, "first draft")

	_, err := e.comments.Update(context.Background(), comment.ID, alice.ID, CommentInput{Content: "not yours"})
	assert.ErrorIs(t, err, ErrNotCommentAuthor)

	updated, err := e.comments.Update(context.Background(), comment.ID, bob.ID, CommentInput{Content: "second draft"})
	require.NoError(t, err)
	assert.Equal(t, "second draft", updated.Content)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestDeleteComment(t *testing.T) {
	e := newEnv()
	alice := e.addUser(t, "Alice", "alice@example.edu")
	bob := e.addUser(t, "Bob", "bob@example.edu")
	pub := e.addPublication(t, alice.ID, "Paper", "content")
	comment := e.addComment(t, bob.ID, pub.ID, "fleeting")
	require.NoError(t, e.reactions.LikeComment(context.Background(), alice.ID, comment.ID))

	err := e.comments.Delete(context.Background(), comment.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotCommentAuthor)

	require.NoError(t, e.comments.Delete(context.Background(), comment.ID, bob.ID))
	assert.Empty(t, e.store.commentLikes)

	err = e.comments.Delete(context.Background(), comment.ID, bob.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestListCommentsByPublication(t *testing.T) {
	e := newEnv()
	alice := e.addUser(t, "Alice", "alice@example.edu")
	bob := e.addUser(t, "Bob", "bob@example.edu")
	pub := e.addPublication(t, alice.ID, "Paper", "content")
	for i := 0; i < 15; i++ {
		e.addComment(t, bob.ID, pub.ID, fmt.Sprintf("comment %d", i))
	}

	result, err := e.comments.ListByPublication(context.Background(), pub.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, result.Items, 10)
	assert.Equal(t, 15, result.Total)
	assert.True(t, result.HasMore())

	result, err = e.comments.ListByPublication(context.Background(), pub.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.False(t, result.HasMore())

	_, err = e.comments.ListByPublication(context.Background(), uuid.New(), 0, 10)
	assert.ErrorIs(t, err, ErrPublicationNotFound)
}

func TestCommentLikeCountInListing(t *testing.T) {
	e := newEnv()
	alice := e.addUser(t, "Alice", "alice@example.edu")
	bob := e.addUser(t, "Bob", "bob@example.edu")
	pub := e.addPublication(t, alice.ID, "Paper", "content")
	comment := e.addComment(t, bob.ID, pub.ID, "liked one")
	require.NoError(t, e.reactions.LikeComment(context.Background(), alice.ID, comment.ID))

	result, err := e.comments.ListByPublication(context.Background(), pub.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Items[0].Likes)
}
