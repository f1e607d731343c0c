package database

import (
	"github.com/google/uuid"
	"github.com/stride-footwear/site-backend/models"
	"gorm.io/gorm"
)

type ProductRepo struct {
	entityRepo[models.Product]
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{newEntityRepo[models.Product](db, "sort_order ASC")}
}

// FindByCategory returns the products linked to a category, sort_order ascending.
func (r *ProductRepo) FindByCategory(categoryID uuid.UUID) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.Where("category_id = ?", categoryID).Order("sort_order ASC").Find(&products).Error
	return products, err
}
