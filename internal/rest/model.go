package rest

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	PublishedAt time.Time  `json:"published_at"`
	IsPublished bool       `json:"is_published"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

type CreateArticleRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished bool   `json:"is_published"`
}

// UpdateArticleRequest is a partial update: a field left out of the
// request body stays nil and the stored value is kept.
type UpdateArticleRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	IsPublished *bool      `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
}

type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
}
