package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/akademix/backend/internal/domain"
	"github.com/akademix/backend/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepo        repository.UserRepository
	followRepo      repository.FollowRepository
	publicationRepo repository.PublicationRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	publicationRepo repository.PublicationRepository,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		followRepo:      followRepo,
		publicationRepo: publicationRepo,
	}
}

type UpdateProfileInput struct {
	Name         string  `json:"name"`
	Title        *string `json:"title,omitempty"`
	Institution  *string `json:"institution,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetProfile assembles the composite profile view. The three counts are
// independent reads, so they fan out concurrently.
func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var publications, followers, following int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		publications, err = s.publicationRepo.CountByAuthor(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		followers, err = s.followRepo.CountFollowers(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		following, err = s.followRepo.CountFollowing(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("counting profile stats: %w", err)
	}

	return &domain.Profile{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Title:        user.Title,
		Institution:  user.Institution,
		Bio:          user.Bio,
		ProfileImage: user.ProfileImage,
		Publications: publications,
		Followers:    followers,
		Following:    following,
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (s *UserService) Search(ctx context.Context, keyword string) ([]domain.UserSummary, error) {
	users, err := s.userRepo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Title = input.Title
	user.Institution = input.Institution
	user.Bio = input.Bio
	user.ProfileImage = input.ProfileImage
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}
