package models

import "github.com/google/uuid"

// Product is a single shoe on the storefront. CategoryID is a weak reference:
// deleting a category unlinks its products rather than cascading, so display
// code must fall back to "no category" when the lookup misses. Price is free
// text ("$120", "From $89"), never parsed as a number.
type Product struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty" db:"category_id" gorm:"type:uuid;index"`
	Name        string     `json:"name" db:"name" gorm:"type:text;not null"`
	Price       string     `json:"price" db:"price" gorm:"type:text;not null"`
	ImageURL    *string    `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	Description *string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	SortOrder   int        `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`
}
