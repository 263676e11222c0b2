package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// previewLimit bounds the content preview in publication summaries.
const previewLimit = 200

type Publication struct {
	ID        uuid.UUID  `json:"id"`
	AuthorID  uuid.UUID  `json:"author_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	// Joined fields
	AuthorName string `json:"author_name,omitempty"`
	// Derived fields, always read from the like/comment tables
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

// PublicationSummary is the listing/search projection: the content is
// truncated to a bounded preview.
type PublicationSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Preview    string    `json:"preview"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
}

// PublicationDetails is the full single-publication view.
type PublicationDetails struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	AuthorID   uuid.UUID  `json:"author_id"`
	AuthorName string     `json:"author_name"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	Likes      int        `json:"likes"`
	Comments   int        `json:"comments"`
	HasLiked   bool       `json:"has_liked"`
}

// Summary returns the listing projection of the publication.
func (p *Publication) Summary() PublicationSummary {
	return PublicationSummary{
		ID:         p.ID,
		Title:      p.Title,
		Preview:    truncate(p.Content, previewLimit),
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt,
		Likes:      p.Likes,
		Comments:   p.Comments,
	}
}

// truncate cuts s to at most limit runes and appends a continuation marker.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
