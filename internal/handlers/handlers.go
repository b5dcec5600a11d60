package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lizakotova/blogium/backend/internal/access"
	"github.com/lizakotova/blogium/backend/internal/middleware"
)

// Handler combines all handler types
type Handler struct {
	Auth     *AuthHandler
	Post     *PostHandler
	Comment  *CommentHandler
	Category *CategoryHandler
	Profile  *ProfileHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(db),
		Post:     NewPostHandler(db),
		Comment:  NewCommentHandler(db),
		Category: NewCategoryHandler(db),
		Profile:  NewProfileHandler(db),
	}
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// viewerID is the actor for visibility checks; anonymous when no principal.
func viewerID(c *gin.Context) int {
	id, ok := extractUserID(c)
	if !ok {
		return access.AnonymousID
	}
	return id
}

func postDetailPath(postID int) string {
	return fmt.Sprintf("/api/posts/%d", postID)
}

// deny translates a policy decision into the response the route contract
// demands: hard 403, soft redirect to the post detail page, or a trip to
// the login flow.
func deny(c *gin.Context, decision access.Decision, postID int) {
	switch decision {
	case access.DenyForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case access.DenyRedirectPost:
		c.Redirect(http.StatusSeeOther, postDetailPath(postID))
	case access.DenyRedirectLogin:
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
	}
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}
