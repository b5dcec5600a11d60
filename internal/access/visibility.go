package access

import (
	"time"

	"gorm.io/gorm"

	"github.com/lizakotova/blogium/backend/internal/models"
)

// AnonymousID is the viewer id used when no authenticated principal is
// attached to the request.
const AnonymousID = 0

// CanView reports whether the viewer may see the post. The public rule is
// published AND pub_date in the past AND (no category OR category published).
// The post's own author bypasses the rule entirely so drafts and scheduled
// posts stay previewable on the detail page.
func CanView(post *models.Post, viewerID int, now time.Time) bool {
	if viewerID != AnonymousID && viewerID == post.AuthorID {
		return true
	}
	if !post.IsPublished {
		return false
	}
	if post.PubDate.After(now) {
		return false
	}
	if post.CategoryID != nil {
		return post.Category != nil && post.Category.IsPublished
	}
	return true
}

// VisibleScope is the query form of CanView's public rule, for listing
// endpoints. Posts without a category pass the category check.
func VisibleScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where(
				"posts.is_published = ? AND posts.pub_date <= ? AND (posts.category_id IS NULL OR categories.is_published = ?)",
				true, now, true,
			)
	}
}
