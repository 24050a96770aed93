package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwrfree/jatinotes-sub000/internal/db"
	"github.com/jwrfree/jatinotes-sub000/internal/models"
	"github.com/jwrfree/jatinotes-sub000/internal/readtime"
	"github.com/jwrfree/jatinotes-sub000/internal/richtext"
)

type BookHandler struct{}

func NewBookHandler() *BookHandler {
	return &BookHandler{}
}

func (h *BookHandler) List(c *gin.Context) {
	var reviews []models.BookReview
	db.DB.Order("created_at DESC").Find(&reviews)

	Render(c, http.StatusOK, "book/list.html", gin.H{
		"Reviews":     reviews,
		"Active":      "books",
		"Title":       "Book Reviews",
		"Description": "Reading notes and book reviews",
		"FullURL":     getSiteURL() + "/books",
	})
}

func (h *BookHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	var review models.BookReview
	if err := db.DB.Where("slug = ?", slug).First(&review).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Review not found")
		return
	}

	// Review bodies are stored as the old CMS's block array.
	blocks, err := richtext.Parse([]byte(review.Review))
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Review content is unreadable")
		return
	}

	Render(c, http.StatusOK, "book/detail.html", gin.H{
		"Review":      review,
		"ReviewHTML":  richtext.RenderHTML(blocks),
		"ReadingTime": readtime.Minutes(readtime.RichTextBlocks(blocks)),
		"Title":       review.Title,
		"Description": review.Title + " by " + review.BookAuthor,
		"FullURL":     getSiteURL() + "/books/" + review.Slug,
	})
}
