package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Title        *string   `json:"title,omitempty"`
	Institution  *string   `json:"institution,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the projection returned by user search and follower listings.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Title        *string   `json:"title,omitempty"`
	Institution  *string   `json:"institution,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
}

// Profile is the composite profile view: the user's public attributes plus
// counts derived from the publication and follow edge tables at read time.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Title        *string   `json:"title,omitempty"`
	Institution  *string   `json:"institution,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	Publications int       `json:"publications"`
	Followers    int       `json:"followers"`
	Following    int       `json:"following"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summary returns the search/listing projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		Title:        u.Title,
		Institution:  u.Institution,
		ProfileImage: u.ProfileImage,
	}
}
