package handlers

import (
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwrfree/jatinotes-sub000/internal/db"
	"github.com/jwrfree/jatinotes-sub000/internal/models"
	"github.com/jwrfree/jatinotes-sub000/internal/utils"
)

type SEOHandler struct{}

func NewSEOHandler() *SEOHandler {
	return &SEOHandler{}
}

func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	siteURL := getSiteURL()
	content := fmt.Sprintf(`User-agent: *
Allow: /

Disallow: /admin/
Disallow: /admin

Sitemap: %s/sitemap.xml

Crawl-delay: 1
`, siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

func (h *SEOHandler) SitemapXML(c *gin.Context) {
	siteURL := getSiteURL()
	now := time.Now().Format("2006-01-02")

	xml := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`

	xml += fmt.Sprintf(`  <url>
    <loc>%s/</loc>
    <lastmod>%s</lastmod>
    <changefreq>daily</changefreq>
    <priority>1.0</priority>
  </url>
`, siteURL, now)

	var posts []models.Post
	db.DB.Select("slug, updated_at").Where("published = ?", true).Order("created_at DESC").Find(&posts)
	for _, post := range posts {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/p/%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>weekly</changefreq>
    <priority>0.8</priority>
  </url>
`, siteURL, post.Slug, post.UpdatedAt.Format("2006-01-02"))
	}

	var reviews []models.BookReview
	db.DB.Select("slug, updated_at").Find(&reviews)
	for _, review := range reviews {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/books/%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>monthly</changefreq>
    <priority>0.6</priority>
  </url>
`, siteURL, review.Slug, review.UpdatedAt.Format("2006-01-02"))
	}

	var categories []models.Category
	db.DB.Select("slug").Find(&categories)
	for _, category := range categories {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/c/%s</loc>
    <changefreq>weekly</changefreq>
    <priority>0.5</priority>
  </url>
`, siteURL, category.Slug)
	}

	var pages []models.Page
	db.DB.Select("slug, updated_at").Find(&pages)
	for _, page := range pages {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>monthly</changefreq>
    <priority>0.4</priority>
  </url>
`, siteURL, page.Slug, page.UpdatedAt.Format("2006-01-02"))
	}

	xml += `</urlset>`

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, xml)
}

// FeedXML serves the RSS 2.0 feed of the latest posts.
func (h *SEOHandler) FeedXML(c *gin.Context) {
	siteURL := getSiteURL()

	var posts []models.Post
	db.DB.Where("published = ?", true).Order("created_at DESC").Limit(20).Find(&posts)

	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Jati Notes</title>
    <link>%s</link>
    <description>Personal notes on software, books and everything in between.</description>
    <language>id</language>
    <lastBuildDate>%s</lastBuildDate>
`, siteURL, time.Now().Format(time.RFC1123Z))

	for _, post := range posts {
		description := post.Excerpt
		if description == "" {
			description = utils.Truncate(utils.StripTags(string(utils.RenderMarkdown(post.Content))), 300)
		}
		xml += fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s/p/%s</link>
      <guid>%s/p/%s</guid>
      <pubDate>%s</pubDate>
      <description>%s</description>
    </item>
`, html.EscapeString(post.Title),
			siteURL, post.Slug,
			siteURL, post.Slug,
			post.CreatedAt.Format(time.RFC1123Z),
			html.EscapeString(description))
	}

	xml += `  </channel>
</rss>`

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, xml)
}
