package models

import "github.com/google/uuid"

// Model is a brand ambassador featured in the showcase section. Name, Quote
// and ImageURL are all mandatory at save time.
type Model struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Designation string    `json:"designation" db:"designation" gorm:"type:text;not null"`
	Quote       string    `json:"quote" db:"quote" gorm:"type:text;not null"`
	ImageURL    string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	SortOrder   int       `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`
}
