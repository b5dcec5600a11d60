package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lizakotova/blogium/backend/internal/access"
	"github.com/lizakotova/blogium/backend/internal/models"
	"github.com/lizakotova/blogium/backend/internal/queries"
)

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

// GetPosts is the index listing: publicly visible posts, newest first,
// comment counts attached, one page at a time.
func (h *PostHandler) GetPosts(c *gin.Context) {
	now := time.Now()
	posts, err := queries.ListPosts(h.db, queries.PostQuery{VisibleAt: &now})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	page := queries.Paginate(posts, queries.PageNumber(c.Query("page")), queries.PageSize)
	c.JSON(http.StatusOK, gin.H{"page_obj": page})
}

// GetPost returns a single post with its comments. A post the viewer may
// not see answers 404, same as one that does not exist; only the author
// gets past the visibility rule.
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Post")
		return
	}

	post, err := queries.GetPost(h.db, postID)
	if err != nil {
		notFound(c, "Post")
		return
	}

	if !access.CanView(post, viewerID(c), time.Now()) {
		notFound(c, "Post")
		return
	}

	comments, err := queries.ListComments(h.db, post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// CreatePost creates a new post and sends the author to their profile
// listing, where the fresh post shows up even if it is a draft.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		userID = access.AnonymousID
	}

	if d := access.Check(access.ResourcePost, access.OpCreate, access.AnonymousID, userID); d != access.Allow {
		deny(c, d, 0)
		return
	}

	var input models.CreatePostRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pubDate := time.Now()
	if input.PubDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.PubDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pub_date must be RFC3339"})
			return
		}
		pubDate = parsed
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	post := models.Post{
		Title:       input.Title,
		Text:        input.Text,
		PubDate:     pubDate,
		IsPublished: published,
		Image:       input.Image,
		AuthorID:    userID,
		LocationID:  input.LocationID,
		CategoryID:  input.CategoryID,
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	var author models.User
	if err := h.db.First(&author, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load author"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/api/profile/"+author.Username)
}

// UpdatePost edits a post. A non-owner is not shown an error page, they are
// redirected to the post's detail page with nothing modified.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Post")
		return
	}

	post, err := queries.GetPost(h.db, postID)
	if err != nil {
		notFound(c, "Post")
		return
	}

	if d := access.Check(access.ResourcePost, access.OpEdit, post.AuthorID, viewerID(c)); d != access.Allow {
		deny(c, d, post.ID)
		return
	}

	var input models.UpdatePostRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Pointer fields separate "absent" from "set to empty", so text and
	// the image can be cleared
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Text != nil {
		post.Text = *input.Text
	}
	if input.PubDate != nil {
		parsed, err := time.Parse(time.RFC3339, *input.PubDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pub_date must be RFC3339"})
			return
		}
		post.PubDate = parsed
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}
	if input.LocationID != nil {
		post.LocationID = input.LocationID
	}
	if input.CategoryID != nil {
		post.CategoryID = input.CategoryID
	}

	if err := h.db.Save(post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post. Unlike edit, a non-owner gets a hard 403.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Post")
		return
	}

	post, err := queries.GetPost(h.db, postID)
	if err != nil {
		notFound(c, "Post")
		return
	}

	if d := access.Check(access.ResourcePost, access.OpDelete, post.AuthorID, viewerID(c)); d != access.Allow {
		deny(c, d, post.ID)
		return
	}

	// Comments go with their post
	if err := h.db.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	if err := h.db.Delete(post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
