package queries

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lizakotova/blogium/backend/internal/access"
	"github.com/lizakotova/blogium/backend/internal/models"
)

// PostQuery composes the optional listing filters. A nil VisibleAt skips the
// visibility rule entirely, which the profile listing relies on: an author's
// page shows every one of their posts, drafts and scheduled ones included.
type PostQuery struct {
	AuthorID   *int
	CategoryID *int
	VisibleAt  *time.Time
}

// ListPosts runs one query for the page: author/location/category are eager
// loaded and comment_count is aggregated in the same pass, so query count
// stays constant no matter how many rows come back. Ordered newest first by
// pub_date with id as a stable tiebreak.
func ListPosts(db *gorm.DB, q PostQuery) ([]models.Post, error) {
	tx := db.Model(&models.Post{}).
		Select("posts.*, COUNT(comments.id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Group("posts.id").
		Preload("Author").
		Preload("Location").
		Preload("Category").
		Order("posts.pub_date DESC, posts.id DESC")

	if q.AuthorID != nil {
		tx = tx.Where("posts.author_id = ?", *q.AuthorID)
	}
	if q.CategoryID != nil {
		tx = tx.Where("posts.category_id = ?", *q.CategoryID)
	}
	if q.VisibleAt != nil {
		tx = tx.Scopes(access.VisibleScope(*q.VisibleAt))
	}

	var posts []models.Post
	if err := tx.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost resolves a single post by id with its relations loaded. Missing
// ids map to the access error so handlers answer 404 uniformly.
func GetPost(db *gorm.DB, id int) (*models.Post, error) {
	var post models.Post
	err := db.
		Preload("Author").
		Preload("Location").
		Preload("Category").
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetCategoryBySlug resolves a published category. An unpublished category
// 404s the whole listing route, it does not merely filter posts out.
func GetCategoryBySlug(db *gorm.DB, slug string) (*models.Category, error) {
	var category models.Category
	err := db.Where("slug = ? AND is_published = ?", slug, true).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetUserByUsername resolves the profile owner for the profile listing.
func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
