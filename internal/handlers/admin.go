package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwrfree/jatinotes-sub000/internal/db"
	"github.com/jwrfree/jatinotes-sub000/internal/models"
	"github.com/jwrfree/jatinotes-sub000/internal/store"
	"github.com/jwrfree/jatinotes-sub000/internal/utils"
)

type AdminHandler struct {
	comments *store.Comments
}

func NewAdminHandler(commentStore *store.Comments) *AdminHandler {
	return &AdminHandler{comments: commentStore}
}

// Dashboard shows the moderation queue.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	pending, err := h.comments.Pending(c.Request.Context())
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the moderation queue")
		return
	}

	var approvedCount int64
	db.DB.Model(&models.Comment{}).Where("approved = ?", true).Count(&approvedCount)

	Render(c, http.StatusOK, "admin/dashboard.html", gin.H{
		"Title":         "Moderation",
		"Pending":       pending,
		"PendingCount":  len(pending),
		"ApprovedCount": approvedCount,
		"Active":        "dashboard",
	})
}

// ApproveComment flips the moderation flag and invalidates the cached
// render of the owning post so the thread shows up on next view.
func (h *AdminHandler) ApproveComment(c *gin.Context) {
	id := c.Param("id")

	comment, err := h.comments.Approve(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	// Detail caches are keyed by slug, not numeric post id.
	utils.GetCache().Delete(fmt.Sprintf("post:detail:%s", comment.Post.Slug))

	c.Redirect(http.StatusFound, "/admin")
}
