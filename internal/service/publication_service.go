package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akademix/backend/internal/domain"
	"github.com/akademix/backend/internal/repository"
)

var (
	ErrPublicationNotFound  = errors.New("publication not found")
	ErrNotPublicationAuthor = errors.New("only the author can modify a publication")
	ErrTitleRequired        = errors.New("title must not be empty")
	ErrContentRequired      = errors.New("content must not be empty")
)

// Notifier broadcasts activity events to connected clients.
type Notifier interface {
	PublicationCreated(pub *domain.Publication)
	PublicationDeleted(publicationID uuid.UUID)
	PublicationLiked(publicationID, userID uuid.UUID)
	CommentCreated(comment *domain.Comment)
}

type PublicationService struct {
	publicationRepo repository.PublicationRepository
	userRepo        repository.UserRepository
	likeRepo        repository.LikeRepository
	notifier        Notifier
}

func NewPublicationService(
	publicationRepo repository.PublicationRepository,
	userRepo repository.UserRepository,
	likeRepo repository.LikeRepository,
) *PublicationService {
	return &PublicationService{
		publicationRepo: publicationRepo,
		userRepo:        userRepo,
		likeRepo:        likeRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *PublicationService) SetNotifier(n Notifier) {
	s.notifier = n
}

type PublicationInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *PublicationService) Create(ctx context.Context, authorID uuid.UUID, input PublicationInput) (*domain.Publication, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	pub := &domain.Publication{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		CreatedAt: time.Now(),
	}

	if err := s.publicationRepo.Create(ctx, pub); err != nil {
		return nil, fmt.Errorf("creating publication: %w", err)
	}

	// Re-read with author name and counts
	full, err := s.publicationRepo.GetByID(ctx, pub.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.PublicationCreated(full)
	}

	return full, nil
}

func (s *PublicationService) Update(ctx context.Context, publicationID, callerID uuid.UUID, input PublicationInput) (*domain.Publication, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	pub, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}
	if pub.AuthorID != callerID {
		return nil, ErrNotPublicationAuthor
	}

	now := time.Now()
	pub.Title = strings.TrimSpace(input.Title)
	pub.Content = input.Content
	pub.UpdatedAt = &now

	if err := s.publicationRepo.Update(ctx, pub); err != nil {
		return nil, fmt.Errorf("updating publication: %w", err)
	}
	return pub, nil
}

// Delete removes the publication with all its comments and like edges.
func (s *PublicationService) Delete(ctx context.Context, publicationID, callerID uuid.UUID) error {
	pub, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return err
	}
	if pub == nil {
		return ErrPublicationNotFound
	}
	if pub.AuthorID != callerID {
		return ErrNotPublicationAuthor
	}

	if err := s.publicationRepo.Delete(ctx, publicationID); err != nil {
		return fmt.Errorf("deleting publication: %w", err)
	}

	if s.notifier != nil {
		s.notifier.PublicationDeleted(publicationID)
	}
	return nil
}

// GetDetails returns the full publication view. callerID may be uuid.Nil for
// unauthenticated reads; HasLiked is false then.
func (s *PublicationService) GetDetails(ctx context.Context, publicationID, callerID uuid.UUID) (*domain.PublicationDetails, error) {
	pub, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}

	var hasLiked bool
	if callerID != uuid.Nil {
		hasLiked, err = s.likeRepo.HasLikedPublication(ctx, callerID, publicationID)
		if err != nil {
			return nil, err
		}
	}

	return &domain.PublicationDetails{
		ID:         pub.ID,
		Title:      pub.Title,
		Content:    pub.Content,
		AuthorID:   pub.AuthorID,
		AuthorName: pub.AuthorName,
		CreatedAt:  pub.CreatedAt,
		UpdatedAt:  pub.UpdatedAt,
		Likes:      pub.Likes,
		Comments:   pub.Comments,
		HasLiked:   hasLiked,
	}, nil
}

func (s *PublicationService) List(ctx context.Context, page, size int) (*domain.Page[domain.PublicationSummary], error) {
	page, size = normalizePage(page, size)

	total, err := s.publicationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	pubs, err := s.publicationRepo.List(ctx, size, page*size)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.PublicationSummary]{
		Items: summarizePublications(pubs),
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

func (s *PublicationService) ListByAuthor(ctx context.Context, authorID uuid.UUID, page, size int) (*domain.Page[domain.PublicationSummary], error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	page, size = normalizePage(page, size)

	total, err := s.publicationRepo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	pubs, err := s.publicationRepo.ListByAuthor(ctx, authorID, size, page*size)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.PublicationSummary]{
		Items: summarizePublications(pubs),
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

func (s *PublicationService) Search(ctx context.Context, keyword string) ([]domain.PublicationSummary, error) {
	pubs, err := s.publicationRepo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return summarizePublications(pubs), nil
}

func validateInput(input PublicationInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(input.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

func summarizePublications(pubs []domain.Publication) []domain.PublicationSummary {
	summaries := make([]domain.PublicationSummary, 0, len(pubs))
	for i := range pubs {
		summaries = append(summaries, pubs[i].Summary())
	}
	return summaries
}
