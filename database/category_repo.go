package database

import (
	"github.com/google/uuid"
	"github.com/stride-footwear/site-backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	entityRepo[models.Category]
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{newEntityRepo[models.Category](db, "name ASC")}
}

// FindBySlug returns the category with the given slug, or nil when none matches.
func (r *CategoryRepo) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	result := r.db.Where("slug = ?", slug).Limit(1).Find(&category)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &category, nil
}

// Delete removes a category and unlinks its products. Products are never
// cascade-deleted: their category_id is set to NULL and they keep rendering
// with a "no category" fallback.
func (r *CategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}
