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
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("only the author can modify a comment")
)

type CommentService struct {
	commentRepo     repository.CommentRepository
	publicationRepo repository.PublicationRepository
	userRepo        repository.UserRepository
	notifier        Notifier
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	publicationRepo repository.PublicationRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo:     commentRepo,
		publicationRepo: publicationRepo,
		userRepo:        userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *CommentService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CommentInput struct {
	Content string `json:"content"`
}

func (s *CommentService) Create(ctx context.Context, authorID, publicationID uuid.UUID, input CommentInput) (*domain.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	pub, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}

	comment := &domain.Comment{
		ID:            uuid.New(),
		PublicationID: publicationID,
		AuthorID:      authorID,
		Content:       input.Content,
		CreatedAt:     time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	// Re-read with author name
	full, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.CommentCreated(full)
	}

	return full, nil
}

func (s *CommentService) Update(ctx context.Context, commentID, callerID uuid.UUID, input CommentInput) (*domain.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.AuthorID != callerID {
		return nil, ErrNotCommentAuthor
	}

	now := time.Now()
	comment.Content = input.Content
	comment.UpdatedAt = &now

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return comment, nil
}

// Delete removes the comment and its like edges.
func (s *CommentService) Delete(ctx context.Context, commentID, callerID uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != callerID {
		return ErrNotCommentAuthor
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

func (s *CommentService) ListByPublication(ctx context.Context, publicationID uuid.UUID, page, size int) (*domain.Page[domain.Comment], error) {
	pub, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}

	page, size = normalizePage(page, size)

	total, err := s.commentRepo.CountByPublication(ctx, publicationID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPublication(ctx, publicationID, size, page*size)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	return &domain.Page[domain.Comment]{
		Items: comments,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}
