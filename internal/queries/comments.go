package queries

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lizakotova/blogium/backend/internal/access"
	"github.com/lizakotova/blogium/backend/internal/models"
)

// ListComments returns a post's comments oldest first, the order the detail
// page shows them in.
func ListComments(db *gorm.DB, postID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func GetComment(db *gorm.DB, id int) (*models.Comment, error) {
	var comment models.Comment
	err := db.Preload("Author").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
