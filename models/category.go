package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Category groups products on the storefront. Features is an ordered list of
// short selling points edited as a comma-joined string in the admin console.
type Category struct {
	ID              uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name            string                      `json:"name" db:"name" gorm:"type:text;not null"`
	Slug            string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description     *string                     `json:"description,omitempty" db:"description" gorm:"type:text"`
	LongDescription *string                     `json:"long_description,omitempty" db:"long_description" gorm:"type:text"`
	ImageURL        *string                     `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	Features        datatypes.JSONSlice[string] `json:"features,omitempty" db:"features"`
}
