package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepo stores like edges for publications and comments. Both tables key
// on the (user, target) pair, so concurrent likes from the same user settle
// on a single edge.
type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

func (r *LikeRepo) LikePublication(ctx context.Context, userID, publicationID uuid.UUID) error {
	query := `
		INSERT INTO publication_likes (user_id, publication_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, publication_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, userID, publicationID, time.Now())
	return err
}

func (r *LikeRepo) UnlikePublication(ctx context.Context, userID, publicationID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM publication_likes WHERE user_id = $1 AND publication_id = $2`,
		userID, publicationID,
	)
	return err
}

func (r *LikeRepo) CountPublicationLikes(ctx context.Context, publicationID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM publication_likes WHERE publication_id = $1`, publicationID,
	).Scan(&n)
	return n, err
}

func (r *LikeRepo) HasLikedPublication(ctx context.Context, userID, publicationID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM publication_likes WHERE user_id = $1 AND publication_id = $2)`,
		userID, publicationID,
	).Scan(&exists)
	return exists, err
}

func (r *LikeRepo) LikeComment(ctx context.Context, userID, commentID uuid.UUID) error {
	query := `
		INSERT INTO comment_likes (user_id, comment_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, comment_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, userID, commentID, time.Now())
	return err
}

func (r *LikeRepo) UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM comment_likes WHERE user_id = $1 AND comment_id = $2`,
		userID, commentID,
	)
	return err
}

func (r *LikeRepo) CountCommentLikes(ctx context.Context, commentID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`, commentID,
	).Scan(&n)
	return n, err
}

func (r *LikeRepo) HasLikedComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM comment_likes WHERE user_id = $1 AND comment_id = $2)`,
		userID, commentID,
	).Scan(&exists)
	return exists, err
}
