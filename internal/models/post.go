package models

import "time"

type Post struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Text        string    `json:"text"`
	PubDate     time.Time `json:"pub_date"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
	Image       string    `json:"image"`
	AuthorID    int       `json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"author"`
	LocationID  *int      `json:"location_id,omitempty"`
	Location    *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	CategoryID  *int      `json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	// CommentCount is filled by the listing query, not stored.
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePostRequest struct {
	Title       string `json:"title" binding:"required"`
	Text        string `json:"text"`
	PubDate     string `json:"pub_date"`
	Image       string `json:"image"`
	IsPublished *bool  `json:"is_published"`
	LocationID  *int   `json:"location_id"`
	CategoryID  *int   `json:"category_id"`
}

// UpdatePostRequest uses pointers so an absent field is distinguishable
// from one deliberately set to its zero value (clearing text or the image).
type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Text        *string `json:"text"`
	PubDate     *string `json:"pub_date"`
	Image       *string `json:"image"`
	IsPublished *bool   `json:"is_published"`
	LocationID  *int    `json:"location_id"`
	CategoryID  *int    `json:"category_id"`
}
