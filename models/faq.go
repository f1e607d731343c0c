package models

import "github.com/google/uuid"

// FAQ is a question/answer pair shown on the public FAQ page, ordered by
// SortOrder ascending. Gaps and duplicate sort values are tolerated.
type FAQ struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Question  string    `json:"question" db:"question" gorm:"type:text;not null"`
	Answer    string    `json:"answer" db:"answer" gorm:"type:text;not null"`
	SortOrder int       `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`
}
