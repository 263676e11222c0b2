package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akademix/backend/internal/repository"
)

// ReactionService owns the like ledger for publications and comments.
// Like and unlike are idempotent in both directions: redundant calls leave
// the edge set unchanged and are not errors.
type ReactionService struct {
	likeRepo        repository.LikeRepository
	userRepo        repository.UserRepository
	publicationRepo repository.PublicationRepository
	commentRepo     repository.CommentRepository
	notifier        Notifier
}

func NewReactionService(
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	publicationRepo repository.PublicationRepository,
	commentRepo repository.CommentRepository,
) *ReactionService {
	return &ReactionService{
		likeRepo:        likeRepo,
		userRepo:        userRepo,
		publicationRepo: publicationRepo,
		commentRepo:     commentRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *ReactionService) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *ReactionService) LikePublication(ctx context.Context, userID, publicationID uuid.UUID) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if err := s.checkPublication(ctx, publicationID); err != nil {
		return err
	}

	if err := s.likeRepo.LikePublication(ctx, userID, publicationID); err != nil {
		return fmt.Errorf("liking publication: %w", err)
	}

	if s.notifier != nil {
		s.notifier.PublicationLiked(publicationID, userID)
	}
	return nil
}

func (s *ReactionService) UnlikePublication(ctx context.Context, userID, publicationID uuid.UUID) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if err := s.checkPublication(ctx, publicationID); err != nil {
		return err
	}
	return s.likeRepo.UnlikePublication(ctx, userID, publicationID)
}

func (s *ReactionService) PublicationLikeCount(ctx context.Context, publicationID uuid.UUID) (int, error) {
	if err := s.checkPublication(ctx, publicationID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountPublicationLikes(ctx, publicationID)
}

func (s *ReactionService) HasLikedPublication(ctx context.Context, userID, publicationID uuid.UUID) (bool, error) {
	return s.likeRepo.HasLikedPublication(ctx, userID, publicationID)
}

func (s *ReactionService) LikeComment(ctx context.Context, userID, commentID uuid.UUID) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if err := s.checkComment(ctx, commentID); err != nil {
		return err
	}

	if err := s.likeRepo.LikeComment(ctx, userID, commentID); err != nil {
		return fmt.Errorf("liking comment: %w", err)
	}
	return nil
}

func (s *ReactionService) UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if err := s.checkComment(ctx, commentID); err != nil {
		return err
	}
	return s.likeRepo.UnlikeComment(ctx, userID, commentID)
}

func (s *ReactionService) CommentLikeCount(ctx context.Context, commentID uuid.UUID) (int, error) {
	if err := s.checkComment(ctx, commentID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountCommentLikes(ctx, commentID)
}

func (s *ReactionService) HasLikedComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	return s.likeRepo.HasLikedComment(ctx, userID, commentID)
}

func (s *ReactionService) checkUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func (s *ReactionService) checkPublication(ctx context.Context, publicationID uuid.UUID) error {
	pub, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return err
	}
	if pub == nil {
		return ErrPublicationNotFound
	}
	return nil
}

func (s *ReactionService) checkComment(ctx context.Context, commentID uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return nil
}
