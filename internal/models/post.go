package models

import (
	"time"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Slug       string    `gorm:"uniqueIndex;size:160;not null" json:"slug"`
	Title      string    `gorm:"not null" json:"title"`
	Excerpt    string    `gorm:"size:300" json:"excerpt"`
	Content    string    `gorm:"type:text" json:"content"` // Markdown source, rendered in the view layer
	CategoryID uint      `gorm:"not null;index;default:1" json:"category_id"`
	Category   Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	CoverURL   string    `json:"cover_url"`
	// CharCount is carried over for posts migrated from the old CMS, which
	// exported a precomputed character count instead of the raw body.
	CharCount int       `gorm:"default:0" json:"char_count"`
	Views     int       `gorm:"default:0" json:"views"`
	Published bool      `gorm:"default:true;index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled at query time, not a database column
	CommentCount int `gorm:"-" json:"comment_count"`
}
