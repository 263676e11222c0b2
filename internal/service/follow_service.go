package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akademix/backend/internal/domain"
	"github.com/akademix/backend/internal/repository"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow inserts the follower→target edge. Re-following is a no-op.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return ErrSelfFollow
	}

	if err := s.checkUsersExist(ctx, followerID, targetID); err != nil {
		return err
	}

	if err := s.followRepo.Create(ctx, followerID, targetID); err != nil {
		return fmt.Errorf("creating follow edge: %w", err)
	}
	return nil
}

// Unfollow removes the edge if present; absence is not an error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if err := s.checkUsersExist(ctx, followerID, targetID); err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, followerID, targetID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, targetID)
}

func (s *FollowService) Followers(ctx context.Context, userID uuid.UUID) ([]domain.UserSummary, error) {
	if err := s.checkUsersExist(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

func (s *FollowService) Following(ctx context.Context, userID uuid.UUID) ([]domain.UserSummary, error) {
	if err := s.checkUsersExist(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

func (s *FollowService) checkUsersExist(ctx context.Context, ids ...uuid.UUID) error {
	for _, id := range ids {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
	}
	return nil
}

func summarize(users []domain.User) []domain.UserSummary {
	summaries := make([]domain.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries
}
