package models

import "time"

type Location struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	IsPublished bool   `gorm:"default:true" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
}
