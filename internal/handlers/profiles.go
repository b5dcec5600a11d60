package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lizakotova/blogium/backend/internal/access"
	"github.com/lizakotova/blogium/backend/internal/models"
	"github.com/lizakotova/blogium/backend/internal/queries"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetProfile lists every post by the profile's owner, visible or not. The
// page doubles as the author's own drafts view and the public "by this
// author" page, so the visibility filter deliberately does not apply here.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := queries.GetUserByUsername(h.db, c.Param("username"))
	if err != nil {
		notFound(c, "Profile")
		return
	}

	posts, err := queries.ListPosts(h.db, queries.PostQuery{AuthorID: &user.ID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	page := queries.Paginate(posts, queries.PageNumber(c.Query("page")), queries.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"profile":  user,
		"page_obj": page,
	})
}

// UpdateProfile edits profile fields. Only the profile's own user may do
// this; anyone else gets a hard 403.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "User")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		notFound(c, "User")
		return
	}

	if d := access.Check(access.ResourceProfile, access.OpEdit, user.ID, viewerID(c)); d != access.Allow {
		deny(c, d, 0)
		return
	}

	// Pointers so an omitted field stays untouched while an explicit empty
	// string clears the name fields
	var input struct {
		Username  *string `json:"username" binding:"omitempty,min=1"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email" binding:"omitempty,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}
