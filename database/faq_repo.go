package database

import (
	"github.com/stride-footwear/site-backend/models"
	"gorm.io/gorm"
)

type FAQRepo struct {
	entityRepo[models.FAQ]
}

func NewFAQRepo(db *gorm.DB) *FAQRepo {
	return &FAQRepo{newEntityRepo[models.FAQ](db, "sort_order ASC")}
}
