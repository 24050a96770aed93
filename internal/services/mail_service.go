package services

import (
	"fmt"
	"html"
	"net/smtp"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool

	log zerolog.Logger
}

func NewMailService(log zerolog.Logger) *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Warn().Msg("MailService disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
		log:      log.With().Str("component", "mail").Logger(),
	}
}

// sendAsync delivers in the background. Delivery is best-effort: failures
// are logged and never propagated to the caller.
func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: Jati Notes <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			s.log.Error().Err(err).Strs("to", to).Str("subject", subject).Msg("Failed to send email")
			return
		}
		s.log.Info().Strs("to", to).Str("subject", subject).Msg("Email sent")
	}()
}

// SendCommentAlert tells the administrator a comment is waiting for review.
func (s *MailService) SendCommentAlert(adminEmail, authorName, authorEmail, postTitle, content, moderationLink string) {
	body := fmt.Sprintf(`<h2>New comment awaiting moderation</h2>
<p><strong>%s</strong> (%s) commented on <strong>%s</strong>:</p>
<blockquote>%s</blockquote>
<p><a href="%s">Review it in the dashboard</a></p>`,
		html.EscapeString(authorName),
		html.EscapeString(authorEmail),
		html.EscapeString(postTitle),
		html.EscapeString(content),
		moderationLink,
	)

	s.sendAsync([]string{adminEmail}, fmt.Sprintf("[Jati Notes] New comment on %q", postTitle), body)
}
