package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/akademix/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Search(ctx context.Context, keyword string) ([]domain.User, error)
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followedID uuid.UUID) error
	Delete(ctx context.Context, followerID, followedID uuid.UUID) error
	Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}

type PublicationRepository interface {
	Create(ctx context.Context, pub *domain.Publication) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Publication, error)
	Update(ctx context.Context, pub *domain.Publication) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]domain.Publication, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]domain.Publication, error)
	Count(ctx context.Context) (int, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	Search(ctx context.Context, keyword string) ([]domain.Publication, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPublication(ctx context.Context, publicationID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	CountByPublication(ctx context.Context, publicationID uuid.UUID) (int, error)
}

type LikeRepository interface {
	LikePublication(ctx context.Context, userID, publicationID uuid.UUID) error
	UnlikePublication(ctx context.Context, userID, publicationID uuid.UUID) error
	CountPublicationLikes(ctx context.Context, publicationID uuid.UUID) (int, error)
	HasLikedPublication(ctx context.Context, userID, publicationID uuid.UUID) (bool, error)
	LikeComment(ctx context.Context, userID, commentID uuid.UUID) error
	UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) error
	CountCommentLikes(ctx context.Context, commentID uuid.UUID) (int, error)
	HasLikedComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
}
