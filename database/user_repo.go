package database

import (
	"github.com/google/uuid"
	"github.com/stride-footwear/site-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	entityRepo[models.User]
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{newEntityRepo[models.User](db, "created_at ASC")}
}

// FindByEmail returns the user with the given email, or nil when none exists.
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.Where("email = ?", email).Limit(1).Find(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

type SessionRepo struct {
	entityRepo[models.Session]
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{newEntityRepo[models.Session](db, "created_at DESC")}
}

type AdminUserRepo struct {
	entityRepo[models.AdminUser]
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{newEntityRepo[models.AdminUser](db, "id ASC")}
}

// IsAdmin reports whether the user appears in the admin allow-list.
func (r *AdminUserRepo) IsAdmin(userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.AdminUser{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// Grant adds a user to the admin allow-list. Granting an existing admin is a
// no-op at the caller's level; the unique index rejects the duplicate row.
func (r *AdminUserRepo) Grant(userID uuid.UUID) error {
	return r.db.Create(&models.AdminUser{UserID: userID}).Error
}
