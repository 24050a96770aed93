package models

import (
	"time"
)

// BookReview holds a review migrated from the old CMS. The body was authored
// as structured rich text (block array), stored here verbatim as JSON and
// decoded with richtext.Parse at render time.
type BookReview struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Slug       string    `gorm:"uniqueIndex;size:160;not null" json:"slug"`
	Title      string    `gorm:"not null" json:"title"`
	BookAuthor string    `gorm:"size:160" json:"book_author"`
	Rating     int       `gorm:"default:0" json:"rating"` // 1-5
	CoverURL   string    `json:"cover_url"`
	Review     string    `gorm:"type:jsonb" json:"review"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
