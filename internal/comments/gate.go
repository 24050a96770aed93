// Package comments holds the comment moderation gate and the reply-tree
// builder. The gate decides whether a raw submission becomes a stored
// comment; the tree builder shapes approved comments for display.
package comments

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/jwrfree/jatinotes-sub000/internal/models"
)

const maxContentLength = 2000

// Keywords that mark a submission as spam regardless of the rest of the
// content. Matched case-insensitively.
var spamKeywords = []string{
	"casino",
	"viagra",
	"cialis",
	"porn",
	"xxx",
	"forex signal",
	"crypto investment",
	"bitcoin giveaway",
	"loan approval",
	"jackpot",
	"betting",
	"judi online",
	"slot gacor",
}

// Anything that looks like scheme://; more than two of these is enough to
// reject on its own.
var urlPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://`)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

var stripPolicy = bluemonday.StrictPolicy()

// CommentStore is the persistence boundary the gate writes through. The
// production implementation lives in internal/store; tests substitute a fake.
type CommentStore interface {
	PostBySlug(ctx context.Context, slug string) (models.Post, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
}

// Notifier is told about every comment that enters the moderation queue.
// Implementations must not fail the submission: they deliver best-effort
// and log their own errors.
type Notifier interface {
	CommentQueued(comment models.Comment, post models.Post)
}

// RejectReason classifies why a submission was turned away.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectBot
	RejectTooLong
	RejectSpam
	RejectInvalidContent
	RejectValidation
	RejectPersistence
)

// Messages shown to the submitter. Bot and spam rejections share one
// generic message so automated posters learn nothing from the response.
const (
	msgGeneric     = "Your comment could not be posted."
	msgTooLong     = "Comments are limited to 2000 characters."
	msgInvalid     = "Comment text is required."
	msgName        = "Please enter your name."
	msgEmail       = "Please enter a valid email address."
	msgUnknownPost = "The post you are commenting on does not exist."
	msgPersist     = "Something went wrong while saving your comment. Please try again."
)

// PendingModerationMessage is shown for every accepted submission, both in
// the gate result and on the page the submitter is redirected to.
const PendingModerationMessage = "Thank you! Your comment is awaiting moderation and will appear once approved."

// SubmitInput is a raw, untrusted comment submission.
type SubmitInput struct {
	AuthorName  string
	AuthorEmail string
	Content     string
	PostSlug    string
	ParentID    string
	// Honeypot is a hidden form field real users never fill in.
	Honeypot string
}

// Result is returned for every submission; failures never surface as errors
// to the HTTP layer.
type Result struct {
	OK      bool
	Reason  RejectReason
	Message string
	Comment *models.Comment
}

func reject(reason RejectReason, message string) Result {
	return Result{Reason: reason, Message: message}
}

// Gate validates, sanitizes and persists comment submissions.
type Gate struct {
	store    CommentStore
	notifier Notifier
	log      zerolog.Logger
}

// NewGate wires a gate to its store and notifier. notifier may be nil.
func NewGate(store CommentStore, notifier Notifier, log zerolog.Logger) *Gate {
	return &Gate{
		store:    store,
		notifier: notifier,
		log:      log.With().Str("component", "comment_gate").Logger(),
	}
}

// Submit runs the moderation pipeline: bot check, field validation, length
// check, spam heuristic, sanitization, persist. The stored comment is always
// unapproved; an administrator flips the flag later.
func (g *Gate) Submit(ctx context.Context, input SubmitInput) Result {
	if strings.TrimSpace(input.Honeypot) != "" {
		g.log.Info().Str("post", input.PostSlug).Msg("honeypot tripped, dropping submission")
		return reject(RejectBot, msgGeneric)
	}

	name := strings.TrimSpace(input.AuthorName)
	if name == "" {
		return reject(RejectValidation, msgName)
	}
	email := strings.TrimSpace(input.AuthorEmail)
	if !emailPattern.MatchString(email) {
		return reject(RejectValidation, msgEmail)
	}

	// The limit is characters, not bytes; multibyte text must not be
	// penalized.
	if utf8.RuneCountInString(input.Content) > maxContentLength {
		return reject(RejectTooLong, msgTooLong)
	}

	if isSpam(input.Content) {
		g.log.Info().Str("post", input.PostSlug).Msg("submission rejected as spam")
		return reject(RejectSpam, msgGeneric)
	}

	content := SanitizeContent(input.Content)
	if content == "" {
		return reject(RejectInvalidContent, msgInvalid)
	}

	post, err := g.store.PostBySlug(ctx, input.PostSlug)
	if err != nil {
		return reject(RejectValidation, msgUnknownPost)
	}

	comment := &models.Comment{
		ID:          uuid.NewString(),
		PostID:      post.ID,
		AuthorName:  name,
		AuthorEmail: strings.ToLower(email),
		Content:     content,
		Approved:    false,
		CreatedAt:   time.Now(),
	}
	if parent := strings.TrimSpace(input.ParentID); parent != "" {
		comment.ParentID = &parent
	}

	if err := g.store.CreateComment(ctx, comment); err != nil {
		g.log.Error().Err(err).Str("post", input.PostSlug).Msg("failed to persist comment")
		return reject(RejectPersistence, msgPersist)
	}

	if g.notifier != nil {
		g.notifier.CommentQueued(*comment, post)
	}

	return Result{OK: true, Message: PendingModerationMessage, Comment: comment}
}

// isSpam applies the keyword denylist and the URL-count heuristic. Either
// alone is sufficient to reject.
func isSpam(content string) bool {
	lowered := strings.ToLower(content)
	for _, kw := range spamKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return len(urlPattern.FindAllStringIndex(content, -1)) > 2
}

// SanitizeContent strips all markup from a submission; no tags or
// attributes survive. Entities are decoded so the stored text is plain.
func SanitizeContent(content string) string {
	stripped := stripPolicy.Sanitize(content)
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// String implements fmt.Stringer for log output.
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectBot:
		return "bot"
	case RejectTooLong:
		return "too_long"
	case RejectSpam:
		return "spam"
	case RejectInvalidContent:
		return "invalid_content"
	case RejectValidation:
		return "validation"
	case RejectPersistence:
		return "persistence"
	}
	return fmt.Sprintf("reject(%d)", int(r))
}
