package models

import (
	"time"
)

// Comment is a reader-submitted message attached to a post. IDs are opaque
// strings assigned by the store at creation. Two reply-linking schemes
// coexist: ParentID is the native reference, LegacyParentID/LegacyExternalID
// carry the numeric scheme inherited from the old CMS so migrated threads
// stay intact. ParentID wins when both are present.
type Comment struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	PostID           uint      `gorm:"not null;index" json:"post_id"`
	Post             Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	ParentID         *string   `gorm:"size:36;index" json:"parent_id"` // Nullable for top-level comments
	LegacyParentID   *int64    `json:"legacy_parent_id"`
	LegacyExternalID *int64    `gorm:"index" json:"legacy_external_id"`
	AuthorName       string    `gorm:"size:120;not null" json:"author_name"`
	AuthorEmail      string    `gorm:"size:254;not null" json:"author_email"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	Approved         bool      `gorm:"default:false;index" json:"approved"`
	CreatedAt        time.Time `json:"created_at"`
}
