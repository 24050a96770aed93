// Command legacyimport loads the comment export of the previous CMS into the
// database. The export keys comments and reply links by numeric ids; those
// ids are preserved on each row so threads keep their shape when the tree
// builder resolves them against newer, reference-linked replies.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/jwrfree/jatinotes-sub000/internal/comments"
	"github.com/jwrfree/jatinotes-sub000/internal/db"
	"github.com/jwrfree/jatinotes-sub000/internal/logger"
	"github.com/jwrfree/jatinotes-sub000/internal/models"
)

type legacyComment struct {
	ID        int64     `json:"id"`
	ParentID  int64     `json:"parent"` // 0 means top-level
	PostSlug  string    `json:"post_slug"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Message   string    `json:"message"` // HTML from the old platform
	CreatedAt time.Time `json:"created_at"`
}

func main() {
	file := flag.String("file", "comments-export.json", "path to the legacy comment export")
	flag.Parse()

	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, reading env vars from system")
	}

	db.Init(log)

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to read export")
	}

	var export []legacyComment
	if err := json.Unmarshal(data, &export); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode export")
	}

	imported, skipped := 0, 0
	for _, lc := range export {
		var post models.Post
		if err := db.DB.Where("slug = ?", lc.PostSlug).First(&post).Error; err != nil {
			log.Warn().Int64("legacy_id", lc.ID).Str("slug", lc.PostSlug).Msg("Post not found, skipping comment")
			skipped++
			continue
		}

		content := comments.SanitizeContent(lc.Message)
		if content == "" {
			log.Warn().Int64("legacy_id", lc.ID).Msg("Empty content after stripping markup, skipping")
			skipped++
			continue
		}

		externalID := lc.ID
		comment := models.Comment{
			ID:               uuid.NewString(),
			PostID:           post.ID,
			LegacyExternalID: &externalID,
			AuthorName:       lc.Author,
			AuthorEmail:      lc.Email,
			Content:          content,
			// Comments in the export were already public on the old platform.
			Approved:  true,
			CreatedAt: lc.CreatedAt,
		}
		if lc.ParentID > 0 {
			parentID := lc.ParentID
			comment.LegacyParentID = &parentID
		}

		if err := db.DB.Create(&comment).Error; err != nil {
			log.Error().Err(err).Int64("legacy_id", lc.ID).Msg("Failed to insert comment")
			skipped++
			continue
		}
		imported++
	}

	log.Info().Int("imported", imported).Int("skipped", skipped).Msg("Legacy import finished")
}
