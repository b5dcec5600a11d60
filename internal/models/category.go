package models

import "time"

// Category is managed through administration tooling; the public API only
// ever reads it.
type Category struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `gorm:"unique;not null" json:"slug"`
	IsPublished bool   `gorm:"default:true" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
}
