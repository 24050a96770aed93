package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwrfree/jatinotes-sub000/internal/comments"
)

type CommentHandler struct {
	gate *comments.Gate
}

func NewCommentHandler(gate *comments.Gate) *CommentHandler {
	return &CommentHandler{gate: gate}
}

// Create accepts a comment form submission for a post. Every outcome is a
// page response; gate failures never surface as errors.
func (h *CommentHandler) Create(c *gin.Context) {
	slug := c.Param("slug")

	input := comments.SubmitInput{
		AuthorName:  c.PostForm("author_name"),
		AuthorEmail: c.PostForm("author_email"),
		Content:     c.PostForm("content"),
		PostSlug:    slug,
		ParentID:    c.PostForm("parent_id"),
		// Hidden field; anything in it marks the submission as automated.
		Honeypot: c.PostForm("website"),
	}

	result := h.gate.Submit(c.Request.Context(), input)
	if !result.OK {
		RenderError(c, http.StatusBadRequest, result.Message)
		return
	}

	// The new comment is unapproved and invisible, so cached renders of the
	// post stay valid. Redirect with a flag the detail page turns into a
	// pending-moderation notice.
	c.Redirect(http.StatusFound, "/p/"+slug+"?submitted=1#comments")
}
