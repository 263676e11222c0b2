package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akademix/backend/internal/domain"
	"github.com/akademix/backend/internal/repository"
)

// memStore is an in-memory stand-in for the postgres repositories. It
// mirrors the storage contract the services rely on: unique email, edge
// tables keyed by pair, cascade deletion, newest-first ordering with id
// tiebreak.
type memStore struct {
	users        map[uuid.UUID]*domain.User
	follows      map[pair]time.Time
	publications map[uuid.UUID]*domain.Publication
	comments     map[uuid.UUID]*domain.Comment
	pubLikes     map[pair]struct{}
	commentLikes map[pair]struct{}
}

type pair struct {
	a, b uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[uuid.UUID]*domain.User),
		follows:      make(map[pair]time.Time),
		publications: make(map[uuid.UUID]*domain.Publication),
		comments:     make(map[uuid.UUID]*domain.Comment),
		pubLikes:     make(map[pair]struct{}),
		commentLikes: make(map[pair]struct{}),
	}
}

// --- UserRepository ---

func (m *memStore) Create(_ context.Context, user *domain.User) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) Update(_ context.Context, user *domain.User) error {
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memStore) Search(_ context.Context, keyword string) ([]domain.User, error) {
	kw := strings.ToLower(keyword)
	var out []domain.User
	for _, u := range m.users {
		if strings.Contains(strings.ToLower(u.Name), kw) || strings.Contains(strings.ToLower(u.Email), kw) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// --- FollowRepository ---

func (m *memStore) CreateFollow(_ context.Context, followerID, followedID uuid.UUID) error {
	key := pair{followerID, followedID}
	if _, ok := m.follows[key]; !ok {
		m.follows[key] = time.Now()
	}
	return nil
}

func (m *memStore) DeleteFollow(_ context.Context, followerID, followedID uuid.UUID) error {
	delete(m.follows, pair{followerID, followedID})
	return nil
}

func (m *memStore) ExistsFollow(_ context.Context, followerID, followedID uuid.UUID) (bool, error) {
	_, ok := m.follows[pair{followerID, followedID}]
	return ok, nil
}

func (m *memStore) ListFollowers(_ context.Context, userID uuid.UUID) ([]domain.User, error) {
	var out []domain.User
	for key := range m.follows {
		if key.b == userID {
			out = append(out, *m.users[key.a])
		}
	}
	sortUsers(out)
	return out, nil
}

func (m *memStore) ListFollowing(_ context.Context, userID uuid.UUID) ([]domain.User, error) {
	var out []domain.User
	for key := range m.follows {
		if key.a == userID {
			out = append(out, *m.users[key.b])
		}
	}
	sortUsers(out)
	return out, nil
}

func (m *memStore) CountFollowers(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for key := range m.follows {
		if key.b == userID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CountFollowing(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for key := range m.follows {
		if key.a == userID {
			n++
		}
	}
	return n, nil
}

// --- PublicationRepository ---

func (m *memStore) CreatePublication(_ context.Context, pub *domain.Publication) error {
	cp := *pub
	m.publications[pub.ID] = &cp
	return nil
}

func (m *memStore) GetPublication(_ context.Context, id uuid.UUID) (*domain.Publication, error) {
	p, ok := m.publications[id]
	if !ok {
		return nil, nil
	}
	return m.hydratePublication(p), nil
}

func (m *memStore) UpdatePublication(_ context.Context, pub *domain.Publication) error {
	stored, ok := m.publications[pub.ID]
	if !ok {
		return nil
	}
	stored.Title = pub.Title
	stored.Content = pub.Content
	stored.UpdatedAt = pub.UpdatedAt
	return nil
}

func (m *memStore) DeletePublication(_ context.Context, id uuid.UUID) error {
	for cid, c := range m.comments {
		if c.PublicationID == id {
			for key := range m.commentLikes {
				if key.b == cid {
					delete(m.commentLikes, key)
				}
			}
			delete(m.comments, cid)
		}
	}
	for key := range m.pubLikes {
		if key.b == id {
			delete(m.pubLikes, key)
		}
	}
	delete(m.publications, id)
	return nil
}

func (m *memStore) ListPublications(_ context.Context, limit, offset int) ([]domain.Publication, error) {
	all := m.sortedPublications(nil)
	return slicePage(all, limit, offset), nil
}

func (m *memStore) ListPublicationsByAuthor(_ context.Context, authorID uuid.UUID, limit, offset int) ([]domain.Publication, error) {
	all := m.sortedPublications(&authorID)
	return slicePage(all, limit, offset), nil
}

func (m *memStore) CountPublications(_ context.Context) (int, error) {
	return len(m.publications), nil
}

func (m *memStore) CountPublicationsByAuthor(_ context.Context, authorID uuid.UUID) (int, error) {
	n := 0
	for _, p := range m.publications {
		if p.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) SearchPublications(_ context.Context, keyword string) ([]domain.Publication, error) {
	kw := strings.ToLower(keyword)
	var out []domain.Publication
	for _, p := range m.sortedPublications(nil) {
		if strings.Contains(strings.ToLower(p.Title), kw) || strings.Contains(strings.ToLower(p.Content), kw) {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- CommentRepository ---

func (m *memStore) CreateComment(_ context.Context, comment *domain.Comment) error {
	cp := *comment
	m.comments[comment.ID] = &cp
	return nil
}

func (m *memStore) GetComment(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, nil
	}
	return m.hydrateComment(c), nil
}

func (m *memStore) UpdateComment(_ context.Context, comment *domain.Comment) error {
	stored, ok := m.comments[comment.ID]
	if !ok {
		return nil
	}
	stored.Content = comment.Content
	stored.UpdatedAt = comment.UpdatedAt
	return nil
}

func (m *memStore) DeleteComment(_ context.Context, id uuid.UUID) error {
	for key := range m.commentLikes {
		if key.b == id {
			delete(m.commentLikes, key)
		}
	}
	delete(m.comments, id)
	return nil
}

func (m *memStore) ListCommentsByPublication(_ context.Context, publicationID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	var all []domain.Comment
	for _, c := range m.comments {
		if c.PublicationID == publicationID {
			all = append(all, *m.hydrateComment(c))
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() > all[j].ID.String()
	})
	return slicePage(all, limit, offset), nil
}

func (m *memStore) CountCommentsByPublication(_ context.Context, publicationID uuid.UUID) (int, error) {
	n := 0
	for _, c := range m.comments {
		if c.PublicationID == publicationID {
			n++
		}
	}
	return n, nil
}

// --- LikeRepository ---

func (m *memStore) LikePublication(_ context.Context, userID, publicationID uuid.UUID) error {
	m.pubLikes[pair{userID, publicationID}] = struct{}{}
	return nil
}

func (m *memStore) UnlikePublication(_ context.Context, userID, publicationID uuid.UUID) error {
	delete(m.pubLikes, pair{userID, publicationID})
	return nil
}

func (m *memStore) CountPublicationLikes(_ context.Context, publicationID uuid.UUID) (int, error) {
	n := 0
	for key := range m.pubLikes {
		if key.b == publicationID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) HasLikedPublication(_ context.Context, userID, publicationID uuid.UUID) (bool, error) {
	_, ok := m.pubLikes[pair{userID, publicationID}]
	return ok, nil
}

func (m *memStore) LikeComment(_ context.Context, userID, commentID uuid.UUID) error {
	m.commentLikes[pair{userID, commentID}] = struct{}{}
	return nil
}

func (m *memStore) UnlikeComment(_ context.Context, userID, commentID uuid.UUID) error {
	delete(m.commentLikes, pair{userID, commentID})
	return nil
}

func (m *memStore) CountCommentLikes(_ context.Context, commentID uuid.UUID) (int, error) {
	n := 0
	for key := range m.commentLikes {
		if key.b == commentID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) HasLikedComment(_ context.Context, userID, commentID uuid.UUID) (bool, error) {
	_, ok := m.commentLikes[pair{userID, commentID}]
	return ok, nil
}

// --- helpers ---

func (m *memStore) hydratePublication(p *domain.Publication) *domain.Publication {
	cp := *p
	if author, ok := m.users[p.AuthorID]; ok {
		cp.AuthorName = author.Name
	}
	cp.Likes, _ = m.CountPublicationLikes(context.Background(), p.ID)
	cp.Comments, _ = m.CountCommentsByPublication(context.Background(), p.ID)
	return &cp
}

func (m *memStore) hydrateComment(c *domain.Comment) *domain.Comment {
	cp := *c
	if author, ok := m.users[c.AuthorID]; ok {
		cp.AuthorName = author.Name
	}
	cp.Likes, _ = m.CountCommentLikes(context.Background(), c.ID)
	return &cp
}

func (m *memStore) sortedPublications(authorID *uuid.UUID) []domain.Publication {
	var all []domain.Publication
	for _, p := range m.publications {
		if authorID != nil && p.AuthorID != *authorID {
			continue
		}
		all = append(all, *m.hydratePublication(p))
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() > all[j].ID.String()
	})
	return all
}

func sortUsers(users []domain.User) {
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID.String() < users[j].ID.String()
	})
}

func slicePage[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// Thin adapters mapping each repository interface onto the shared store.

type fakeUserRepo struct{ s *memStore }

func (r fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	return r.s.Create(ctx, user)
}

func (r fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.s.GetByID(ctx, id)
}

func (r fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.s.GetByEmail(ctx, email)
}

func (r fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	return r.s.Update(ctx, user)
}

func (r fakeUserRepo) Search(ctx context.Context, keyword string) ([]domain.User, error) {
	return r.s.Search(ctx, keyword)
}

type fakeFollowRepo struct{ s *memStore }

func (r fakeFollowRepo) Create(ctx context.Context, followerID, followedID uuid.UUID) error {
	return r.s.CreateFollow(ctx, followerID, followedID)
}

func (r fakeFollowRepo) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	return r.s.DeleteFollow(ctx, followerID, followedID)
}

func (r fakeFollowRepo) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	return r.s.ExistsFollow(ctx, followerID, followedID)
}

func (r fakeFollowRepo) ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	return r.s.ListFollowers(ctx, userID)
}

func (r fakeFollowRepo) ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	return r.s.ListFollowing(ctx, userID)
}

func (r fakeFollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.s.CountFollowers(ctx, userID)
}

func (r fakeFollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.s.CountFollowing(ctx, userID)
}

type fakePublicationRepo struct{ s *memStore }

func (r fakePublicationRepo) Create(ctx context.Context, pub *domain.Publication) error {
	return r.s.CreatePublication(ctx, pub)
}

func (r fakePublicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Publication, error) {
	return r.s.GetPublication(ctx, id)
}

func (r fakePublicationRepo) Update(ctx context.Context, pub *domain.Publication) error {
	return r.s.UpdatePublication(ctx, pub)
}

func (r fakePublicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.DeletePublication(ctx, id)
}

func (r fakePublicationRepo) List(ctx context.Context, limit, offset int) ([]domain.Publication, error) {
	return r.s.ListPublications(ctx, limit, offset)
}

func (r fakePublicationRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]domain.Publication, error) {
	return r.s.ListPublicationsByAuthor(ctx, authorID, limit, offset)
}

func (r fakePublicationRepo) Count(ctx context.Context) (int, error) {
	return r.s.CountPublications(ctx)
}

func (r fakePublicationRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return r.s.CountPublicationsByAuthor(ctx, authorID)
}

func (r fakePublicationRepo) Search(ctx context.Context, keyword string) ([]domain.Publication, error) {
	return r.s.SearchPublications(ctx, keyword)
}

type fakeCommentRepo struct{ s *memStore }

func (r fakeCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return r.s.CreateComment(ctx, comment)
}

func (r fakeCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	return r.s.GetComment(ctx, id)
}

func (r fakeCommentRepo) Update(ctx context.Context, comment *domain.Comment) error {
	return r.s.UpdateComment(ctx, comment)
}

func (r fakeCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.DeleteComment(ctx, id)
}

func (r fakeCommentRepo) ListByPublication(ctx context.Context, publicationID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	return r.s.ListCommentsByPublication(ctx, publicationID, limit, offset)
}

func (r fakeCommentRepo) CountByPublication(ctx context.Context, publicationID uuid.UUID) (int, error) {
	return r.s.CountCommentsByPublication(ctx, publicationID)
}

// memStore itself already satisfies LikeRepository.
