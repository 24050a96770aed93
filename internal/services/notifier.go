package services

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jwrfree/jatinotes-sub000/internal/models"
	"github.com/jwrfree/jatinotes-sub000/internal/utils"
)

// CommentNotifier implements the gate's Notifier: when a comment enters the
// moderation queue it emails the administrator and drops an in-app
// notification for every admin account. Both paths are best-effort; a
// failure here never reaches the submitter.
type CommentNotifier struct {
	mail *MailService
	db   *gorm.DB
	log  zerolog.Logger
}

func NewCommentNotifier(mail *MailService, gdb *gorm.DB, log zerolog.Logger) *CommentNotifier {
	return &CommentNotifier{
		mail: mail,
		db:   gdb,
		log:  log.With().Str("component", "comment_notifier").Logger(),
	}
}

func (n *CommentNotifier) CommentQueued(comment models.Comment, post models.Post) {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "https://jatinotes.com"
	}
	moderationLink := siteURL + "/admin"

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail != "" {
		n.mail.SendCommentAlert(
			adminEmail,
			comment.AuthorName,
			comment.AuthorEmail,
			post.Title,
			comment.Content,
			moderationLink,
		)
	}

	var admins []models.User
	if err := n.db.Where("role = ?", "admin").Find(&admins).Error; err != nil {
		n.log.Error().Err(err).Msg("Failed to load admin accounts for notification")
		return
	}

	for _, admin := range admins {
		notification := models.Notification{
			UserID:    admin.ID,
			CommentID: &comment.ID,
			Type:      models.NotificationTypeCommentPending,
			Reason: fmt.Sprintf("%s commented on \"%s\": %s",
				comment.AuthorName, post.Title, utils.Truncate(comment.Content, 120)),
		}
		if err := n.db.Create(&notification).Error; err != nil {
			n.log.Error().Err(err).Uint("admin_id", admin.ID).Msg("Failed to create notification")
		}
	}
}
