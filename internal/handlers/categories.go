package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lizakotova/blogium/backend/internal/queries"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// GetCategoryPosts lists visible posts in one category. An unpublished or
// unknown category 404s the route itself rather than showing an empty page.
func (h *CategoryHandler) GetCategoryPosts(c *gin.Context) {
	category, err := queries.GetCategoryBySlug(h.db, c.Param("slug"))
	if err != nil {
		notFound(c, "Category")
		return
	}

	now := time.Now()
	posts, err := queries.ListPosts(h.db, queries.PostQuery{
		CategoryID: &category.ID,
		VisibleAt:  &now,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	page := queries.Paginate(posts, queries.PageNumber(c.Query("page")), queries.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"page_obj": page,
	})
}
