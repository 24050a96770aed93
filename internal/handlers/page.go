package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwrfree/jatinotes-sub000/internal/db"
	"github.com/jwrfree/jatinotes-sub000/internal/models"
	"github.com/jwrfree/jatinotes-sub000/internal/utils"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Show(c *gin.Context) {
	slug := c.Param("slug")

	var page models.Page
	if err := db.DB.Where("slug = ?", slug).First(&page).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Page not found")
		return
	}

	Render(c, http.StatusOK, "page/show.html", gin.H{
		"Page":        page,
		"PageContent": utils.RenderMarkdown(page.Content),
		"Title":       page.Title,
		"FullURL":     getSiteURL() + "/" + page.Slug,
	})
}
