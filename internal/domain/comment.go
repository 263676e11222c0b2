package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID            uuid.UUID  `json:"id"`
	PublicationID uuid.UUID  `json:"publication_id"`
	AuthorID      uuid.UUID  `json:"author_id"`
	Content       string     `json:"content"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	// Joined fields
	AuthorName string `json:"author_name,omitempty"`
	// Derived field, always read from the comment_likes table
	Likes int `json:"likes"`
}
