package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akademix/backend/internal/domain"
)

// publicationSelect reads a publication with its author name and the like
// and comment counts derived from the edge tables, so every read reflects
// the ledger state at query time.
const publicationSelect = `
	SELECT p.id, p.author_id, p.title, p.content, p.created_at, p.updated_at, u.name,
		(SELECT COUNT(*) FROM publication_likes l WHERE l.publication_id = p.id),
		(SELECT COUNT(*) FROM comments c WHERE c.publication_id = p.id)
	FROM publications p
	JOIN users u ON p.author_id = u.id`

type PublicationRepo struct {
	pool *pgxpool.Pool
}

func NewPublicationRepo(pool *pgxpool.Pool) *PublicationRepo {
	return &PublicationRepo{pool: pool}
}

func (r *PublicationRepo) Create(ctx context.Context, pub *domain.Publication) error {
	query := `
		INSERT INTO publications (id, author_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		pub.ID, pub.AuthorID, pub.Title, pub.Content, pub.CreatedAt,
	)
	return err
}

func (r *PublicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Publication, error) {
	var p domain.Publication
	err := r.pool.QueryRow(ctx, publicationSelect+` WHERE p.id = $1`, id).Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt,
		&p.AuthorName, &p.Likes, &p.Comments,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *PublicationRepo) Update(ctx context.Context, pub *domain.Publication) error {
	query := `UPDATE publications SET title = $1, content = $2, updated_at = $3 WHERE id = $4`
	_, err := r.pool.Exec(ctx, query, pub.Title, pub.Content, pub.UpdatedAt, pub.ID)
	return err
}

// Delete removes the publication. Its comments and all like edges on the
// publication and those comments go with it in the same statement through
// the ON DELETE CASCADE foreign keys, so the cascade is atomic.
func (r *PublicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM publications WHERE id = $1`, id)
	return err
}

func (r *PublicationRepo) List(ctx context.Context, limit, offset int) ([]domain.Publication, error) {
	query := publicationSelect + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2`
	return r.listPublications(ctx, query, limit, offset)
}

func (r *PublicationRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]domain.Publication, error) {
	query := publicationSelect + `
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3`
	return r.listPublications(ctx, query, authorID, limit, offset)
}

func (r *PublicationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM publications`).Scan(&n)
	return n, err
}

func (r *PublicationRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM publications WHERE author_id = $1`, authorID,
	).Scan(&n)
	return n, err
}

// Search matches the keyword as a case-insensitive substring of title or
// content. The order carries no relevance meaning; created_at and id only
// keep it deterministic.
func (r *PublicationRepo) Search(ctx context.Context, keyword string) ([]domain.Publication, error) {
	query := publicationSelect + `
		WHERE p.title ILIKE '%' || $1 || '%' OR p.content ILIKE '%' || $1 || '%'
		ORDER BY p.created_at DESC, p.id DESC`
	return r.listPublications(ctx, query, keyword)
}

func (r *PublicationRepo) listPublications(ctx context.Context, query string, args ...any) ([]domain.Publication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pubs []domain.Publication
	for rows.Next() {
		var p domain.Publication
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt,
			&p.AuthorName, &p.Likes, &p.Comments,
		); err != nil {
			return nil, err
		}
		pubs = append(pubs, p)
	}
	return pubs, rows.Err()
}
