package handlers

import (
	"fmt"
	"html/template"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jwrfree/jatinotes-sub000/internal/comments"
	"github.com/jwrfree/jatinotes-sub000/internal/db"
	"github.com/jwrfree/jatinotes-sub000/internal/models"
	"github.com/jwrfree/jatinotes-sub000/internal/readtime"
	"github.com/jwrfree/jatinotes-sub000/internal/store"
	"github.com/jwrfree/jatinotes-sub000/internal/utils"
)

const postsPerPage = 10

type BlogHandler struct {
	comments *store.Comments
}

func NewBlogHandler(commentStore *store.Comments) *BlogHandler {
	return &BlogHandler{comments: commentStore}
}

// CommentView is one row of the rendered reply forest, flattened with its
// nesting depth for the template.
type CommentView struct {
	ID          string
	AuthorName  string
	ContentHTML template.HTML
	CreatedAt   time.Time
	Depth       int
}

// fillCommentCounts batch-fills approved comment counts for post lists.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ? AND approved = ?", postIDs, true).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

func getSiteURL() string {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "https://jatinotes.com"
	}
	return siteURL
}

func pageParam(c *gin.Context) int {
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	return page
}

// readingMinutes picks the reading-time source for a post: migrated posts
// carry a precomputed character count, native posts are counted from their
// markdown body rendered to HTML.
func readingMinutes(post models.Post) int {
	rendered := readtime.HTMLText(utils.RenderMarkdown(post.Content))
	if post.CharCount > 0 {
		return readtime.Minutes(readtime.PrecomputedCount{
			CharCount: post.CharCount,
			Fallback:  rendered,
		})
	}
	return readtime.Minutes(rendered)
}

func (h *BlogHandler) Home(c *gin.Context) {
	page := pageParam(c)

	cacheKey := fmt.Sprintf("post:list:page:%d", page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			Render(c, http.StatusOK, "blog/list.html", hData)
			return
		}
	}

	offset := (page - 1) * postsPerPage

	var total int64
	db.DB.Model(&models.Post{}).Where("published = ?", true).Count(&total)

	totalPages := int(math.Ceil(float64(total) / float64(postsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var posts []models.Post
	db.DB.Preload("Category").
		Where("published = ?", true).
		Order("created_at DESC").
		Limit(postsPerPage).
		Offset(offset).
		Find(&posts)

	fillCommentCounts(posts)

	var categories []models.Category
	db.DB.Order("id ASC").Find(&categories)

	fullURL := getSiteURL()
	if page > 1 {
		fullURL = fmt.Sprintf("%s?page=%d", fullURL, page)
	}

	renderData := gin.H{
		"Posts":       posts,
		"Categories":  categories,
		"Active":      "home",
		"Title":       "Jati Notes",
		"CurrentPage": page,
		"TotalPages":  totalPages,
		"Description": "Personal notes on software, books and everything in between.",
		"FullURL":     fullURL,
	}

	utils.GetCache().Set(cacheKey, renderData, 1*time.Minute)

	Render(c, http.StatusOK, "blog/list.html", renderData)
}

func (h *BlogHandler) ListByCategory(c *gin.Context) {
	slug := c.Param("slug")

	var category models.Category
	if err := db.DB.Where("slug = ?", slug).First(&category).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	page := pageParam(c)
	offset := (page - 1) * postsPerPage

	var total int64
	db.DB.Model(&models.Post{}).Where("category_id = ? AND published = ?", category.ID, true).Count(&total)

	totalPages := int(math.Ceil(float64(total) / float64(postsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var posts []models.Post
	db.DB.Preload("Category").
		Where("category_id = ? AND published = ?", category.ID, true).
		Order("created_at DESC").
		Limit(postsPerPage).
		Offset(offset).
		Find(&posts)

	fillCommentCounts(posts)

	var categories []models.Category
	db.DB.Order("id ASC").Find(&categories)

	fullURL := fmt.Sprintf("%s/c/%s", getSiteURL(), category.Slug)
	if page > 1 {
		fullURL = fmt.Sprintf("%s?page=%d", fullURL, page)
	}

	description := category.Description
	if description == "" {
		description = fmt.Sprintf("Posts in %s", category.Name)
	}

	Render(c, http.StatusOK, "blog/list.html", gin.H{
		"Posts":       posts,
		"Categories":  categories,
		"Category":    category,
		"Active":      "category",
		"Title":       category.Name,
		"CurrentPage": page,
		"TotalPages":  totalPages,
		"Description": description,
		"FullURL":     fullURL,
	})
}

func (h *BlogHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	cacheKey := fmt.Sprintf("post:detail:%s", slug)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			if postData, ok := hData["Post"].(models.Post); ok {
				db.DB.Model(&models.Post{}).Where("id = ?", postData.ID).UpdateColumn("views", gorm.Expr("views + 1"))
			}
			Render(c, http.StatusOK, "blog/detail.html", withFlash(hData, flashMessage(c)))
			return
		}
	}

	var post models.Post
	if err := db.DB.Preload("Category").Where("slug = ? AND published = ?", slug, true).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	db.DB.Model(&post).UpdateColumn("views", post.Views+1)
	post.Views++

	flat, err := h.comments.ApprovedForPost(c.Request.Context(), post.ID)
	if err != nil {
		// Degrade to an empty thread rather than failing the page.
		flat = nil
	}

	commentViews := make([]CommentView, 0, len(flat))
	comments.Walk(comments.Organize(flat), func(n *comments.Node, depth int) {
		commentViews = append(commentViews, CommentView{
			ID:          n.ID,
			AuthorName:  n.AuthorName,
			ContentHTML: utils.RenderMarkdown(n.Content),
			CreatedAt:   n.CreatedAt,
			Depth:       depth,
		})
	})

	postContentHTML := utils.RenderMarkdown(post.Content)

	var categories []models.Category
	db.DB.Order("id ASC").Find(&categories)

	description := post.Excerpt
	if description == "" {
		description = utils.Truncate(utils.StripTags(string(postContentHTML)), 150)
	}

	var prevPost models.Post
	hasPrev := db.DB.Select("slug, title").
		Where("created_at < ? AND published = ?", post.CreatedAt, true).
		Order("created_at DESC").
		First(&prevPost).Error == nil

	var nextPost models.Post
	hasNext := db.DB.Select("slug, title").
		Where("created_at > ? AND published = ?", post.CreatedAt, true).
		Order("created_at ASC").
		First(&nextPost).Error == nil

	renderData := gin.H{
		"Post":          post,
		"PostContent":   postContentHTML,
		"Comments":      commentViews,
		"CommentCount":  len(commentViews),
		"ReadingTime":   readingMinutes(post),
		"Categories":    categories,
		"Title":         post.Title,
		"Description":   description,
		"FullURL":       fmt.Sprintf("%s/p/%s", getSiteURL(), post.Slug),
		"PublishedTime": post.CreatedAt.Format(time.RFC3339),
		"ModifiedTime":  post.UpdatedAt.Format(time.RFC3339),
		"HasPrev":       hasPrev,
		"PrevPost":      prevPost,
		"HasNext":       hasNext,
		"NextPost":      nextPost,
	}

	utils.GetCache().Set(cacheKey, renderData, 5*time.Minute)

	Render(c, http.StatusOK, "blog/detail.html", withFlash(renderData, flashMessage(c)))
}

// withFlash returns a copy of data with the flash message added. The
// input map may also be held by the page cache, so it is never written to.
func withFlash(data gin.H, flash string) gin.H {
	out := make(gin.H, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out["Flash"] = flash
	return out
}

// flashMessage surfaces the post-submit redirect state. The message is
// ours, never echoed user input.
func flashMessage(c *gin.Context) string {
	if c.Query("submitted") == "1" {
		return comments.PendingModerationMessage
	}
	return ""
}

func (h *BlogHandler) Search(c *gin.Context) {
	query := c.Query("q")

	var posts []models.Post

	if query != "" {
		searchPattern := "%" + query + "%"
		db.DB.Preload("Category").
			Where("published = ?", true).
			Where("title ILIKE ? OR content ILIKE ?", searchPattern, searchPattern).
			Order("created_at DESC").
			Limit(50).
			Find(&posts)
	}

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "search.html", gin.H{
		"Posts":       posts,
		"Query":       query,
		"Active":      "search",
		"Title":       "Search",
		"Description": "Search Jati Notes",
		"FullURL":     fmt.Sprintf("%s/search?q=%s", getSiteURL(), query),
	})
}
