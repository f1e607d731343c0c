package database

import (
	"github.com/stride-footwear/site-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	entityRepo[models.BlogPost]
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{newEntityRepo[models.BlogPost](db, "created_at DESC")}
}

// FindPublished returns published posts only, newest first. Drafts never
// appear on the public site.
func (r *BlogPostRepo) FindPublished() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Where("published = ?", true).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindPublishedBySlug returns the published post with the given slug, or nil
// when there is none (including when a draft with that slug exists).
func (r *BlogPostRepo) FindPublishedBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	result := r.db.Where("slug = ? AND published = ?", slug, true).Limit(1).Find(&post)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &post, nil
}
