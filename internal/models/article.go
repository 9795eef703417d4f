package models

import "time"

// Article is a long-form piece published by a user (PostgreSQL).
type Article struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	Tags      string    `json:"tags" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateArticleRequest defines the request body for publishing an article.
type CreateArticleRequest struct {
	AuthorID uint   `json:"author_id" validate:"required,gt=0"`
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Body     string `json:"body" validate:"required,min=1"`
	Tags     string `json:"tags" validate:"omitempty,max=255"`
}

// UpdateArticleRequest defines the request body for editing an article.
type UpdateArticleRequest struct {
	Title string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Body  string `json:"body,omitempty" validate:"omitempty,min=1"`
	Tags  string `json:"tags,omitempty" validate:"omitempty,max=255"`
}
