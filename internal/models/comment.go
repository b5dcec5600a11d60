package models

import "time"

type Comment struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"not null" json:"text"`
	PostID   int    `gorm:"not null" json:"post_id"`
	AuthorID int    `json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
