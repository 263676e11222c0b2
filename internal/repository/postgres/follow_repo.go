package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akademix/backend/internal/domain"
)

type FollowRepo struct {
	pool *pgxpool.Pool
}

func NewFollowRepo(pool *pgxpool.Pool) *FollowRepo {
	return &FollowRepo{pool: pool}
}

// Create inserts the follow edge. Re-following is a no-op: the primary key
// on (follower_id, followed_id) plus ON CONFLICT makes the insert idempotent.
func (r *FollowRepo) Create(ctx context.Context, followerID, followedID uuid.UUID) error {
	query := `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, followed_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, followerID, followedID, time.Now())
	return err
}

func (r *FollowRepo) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID,
	)
	return err
}

func (r *FollowRepo) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`,
		followerID, followedID,
	).Scan(&exists)
	return exists, err
}

func (r *FollowRepo) ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.title, u.institution, u.bio, u.profile_image, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON f.follower_id = u.id
		WHERE f.followed_id = $1
		ORDER BY u.name ASC, u.id ASC`
	return r.listUsers(ctx, query, userID)
}

func (r *FollowRepo) ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.title, u.institution, u.bio, u.profile_image, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON f.followed_id = u.id
		WHERE f.follower_id = $1
		ORDER BY u.name ASC, u.id ASC`
	return r.listUsers(ctx, query, userID)
}

func (r *FollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM follows WHERE followed_id = $1`, userID,
	).Scan(&n)
	return n, err
}

func (r *FollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID,
	).Scan(&n)
	return n, err
}

func (r *FollowRepo) listUsers(ctx context.Context, query string, userID uuid.UUID) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash,
			&u.Title, &u.Institution, &u.Bio, &u.ProfileImage,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
