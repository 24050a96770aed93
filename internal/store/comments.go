// Package store provides the gorm-backed persistence used by the comment
// pipeline. Handlers reach posts through the db package directly; the
// moderation gate only sees this store behind its interface.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jwrfree/jatinotes-sub000/internal/models"
)

type Comments struct {
	db *gorm.DB
}

func NewComments(gdb *gorm.DB) *Comments {
	return &Comments{db: gdb}
}

func (s *Comments) PostBySlug(ctx context.Context, slug string) (models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Where("slug = ? AND published = ?", slug, true).First(&post).Error
	if err != nil {
		return models.Post{}, fmt.Errorf("post %q: %w", slug, err)
	}
	return post, nil
}

func (s *Comments) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// ApprovedForPost returns the approved comments of a post oldest-first, the
// order the tree builder expects.
func (s *Comments) ApprovedForPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND approved = ?", postID, true).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("approved comments for post %d: %w", postID, err)
	}
	return comments, nil
}

// Pending returns unapproved comments newest-first for the moderation queue.
func (s *Comments) Pending(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("Post").
		Where("approved = ?", false).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("pending comments: %w", err)
	}
	return comments, nil
}

// Approve flips the moderation flag. Approval is the sole visibility gate;
// comments are never hard-deleted here.
func (s *Comments) Approve(ctx context.Context, id string) (models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).Preload("Post").Where("id = ?", id).First(&comment).Error
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment %q: %w", id, err)
	}
	if err := s.db.WithContext(ctx).Model(&comment).Update("approved", true).Error; err != nil {
		return models.Comment{}, fmt.Errorf("approve comment %q: %w", id, err)
	}
	comment.Approved = true
	return comment, nil
}
