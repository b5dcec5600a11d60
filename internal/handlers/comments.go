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

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// GetComments lists a post's comments oldest first. The post must be
// viewable by the requester or the whole route answers 404.
func (h *CommentHandler) GetComments(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment adds a comment to a post the actor can see, then sends them
// back to the post detail page.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor := viewerID(c)

	if d := access.Check(access.ResourceComment, access.OpCreate, access.AnonymousID, actor); d != access.Allow {
		deny(c, d, 0)
		return
	}

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

	// Hidden posts cannot collect comments from anyone but their author
	if !access.CanView(post, actor, time.Now()) {
		notFound(c, "Post")
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := models.Comment{
		Text:     input.Text,
		PostID:   post.ID,
		AuthorID: actor,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailPath(post.ID))
}

// UpdateComment edits a comment (owner only; non-owners are redirected to
// the post detail page, the comment untouched).
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Post")
		return
	}

	commentID, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		notFound(c, "Comment")
		return
	}

	comment, err := queries.GetComment(h.db, commentID)
	if err != nil || comment.PostID != postID {
		notFound(c, "Comment")
		return
	}

	if d := access.Check(access.ResourceComment, access.OpEdit, comment.AuthorID, viewerID(c)); d != access.Allow {
		deny(c, d, comment.PostID)
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment.Text = input.Text
	if err := h.db.Save(comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment (owner only, same soft denial as edit).
// Deleting an id that is already gone answers 404 with no side effects, on
// repeat calls too.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Post")
		return
	}

	commentID, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		notFound(c, "Comment")
		return
	}

	comment, err := queries.GetComment(h.db, commentID)
	if err != nil || comment.PostID != postID {
		notFound(c, "Comment")
		return
	}

	if d := access.Check(access.ResourceComment, access.OpDelete, comment.AuthorID, viewerID(c)); d != access.Allow {
		deny(c, d, comment.PostID)
		return
	}

	if err := h.db.Delete(comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
