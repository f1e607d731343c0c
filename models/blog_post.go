package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAuthor is the byline used when a post is created without one.
const DefaultAuthor = "STRIDE Team"

// BlogPost represents a journal entry on the public site. Posts with
// Published=false are drafts and never appear in public listings.
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Excerpt   *string   `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Author    string    `json:"author" db:"author" gorm:"type:text;not null"`
	Published bool      `json:"published" db:"published" gorm:"type:boolean;not null;default:false"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
}
