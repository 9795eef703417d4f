package models

import "time"

// Resource is a shared link or file reference a user publishes to their
// profile (PostgreSQL).
type Resource struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	URL         string    `json:"url" gorm:"size:500;not null"`
	Category    string    `json:"category" gorm:"size:50;index"`
	Description string    `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateResourceRequest defines the request body for sharing a resource.
type CreateResourceRequest struct {
	OwnerID     uint   `json:"owner_id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required,min=3,max=200"`
	URL         string `json:"url" validate:"required,url"`
	Category    string `json:"category" validate:"omitempty,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
}
