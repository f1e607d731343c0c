package database

import (
	"github.com/stride-footwear/site-backend/models"
	"gorm.io/gorm"
)

type ModelRepo struct {
	entityRepo[models.Model]
}

func NewModelRepo(db *gorm.DB) *ModelRepo {
	return &ModelRepo{newEntityRepo[models.Model](db, "sort_order ASC")}
}
