package database

import (
	"github.com/google/uuid"
	"github.com/stride-footwear/site-backend/models"
	"gorm.io/gorm"
)

type ContactSubmissionRepo struct {
	entityRepo[models.ContactSubmission]
}

func NewContactSubmissionRepo(db *gorm.DB) *ContactSubmissionRepo {
	return &ContactSubmissionRepo{newEntityRepo[models.ContactSubmission](db, "created_at DESC")}
}

// MarkRead flags a submission as read. Submissions are never otherwise edited.
func (r *ContactSubmissionRepo) MarkRead(id uuid.UUID) error {
	return r.UpdateFields(id, map[string]any{"is_read": true})
}
