package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akademix/backend/internal/domain"
)

const commentSelect = `
	SELECT c.id, c.publication_id, c.author_id, c.content, c.created_at, c.updated_at, u.name,
		(SELECT COUNT(*) FROM comment_likes l WHERE l.comment_id = c.id)
	FROM comments c
	JOIN users u ON c.author_id = u.id`

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

func (r *CommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, publication_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.PublicationID, comment.AuthorID,
		comment.Content, comment.CreatedAt,
	)
	return err
}

func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, id).Scan(
		&c.ID, &c.PublicationID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
		&c.AuthorName, &c.Likes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &c, err
}

func (r *CommentRepo) Update(ctx context.Context, comment *domain.Comment) error {
	query := `UPDATE comments SET content = $1, updated_at = $2 WHERE id = $3`
	_, err := r.pool.Exec(ctx, query, comment.Content, comment.UpdatedAt, comment.ID)
	return err
}

// Delete removes the comment; its like edges cascade with it.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

func (r *CommentRepo) ListByPublication(ctx context.Context, publicationID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	query := commentSelect + `
		WHERE c.publication_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, publicationID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID, &c.PublicationID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&c.AuthorName, &c.Likes,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepo) CountByPublication(ctx context.Context, publicationID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE publication_id = $1`, publicationID,
	).Scan(&n)
	return n, err
}
