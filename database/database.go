package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogPostRepo          *BlogPostRepo
	contactSubmissionRepo *ContactSubmissionRepo
	faqRepo               *FAQRepo
	categoryRepo          *CategoryRepo
	productRepo           *ProductRepo
	modelRepo             *ModelRepo
	userRepo              *UserRepo
	sessionRepo           *SessionRepo
	adminUserRepo         *AdminUserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo:          NewBlogPostRepo(db),
		contactSubmissionRepo: NewContactSubmissionRepo(db),
		faqRepo:               NewFAQRepo(db),
		categoryRepo:          NewCategoryRepo(db),
		productRepo:           NewProductRepo(db),
		modelRepo:             NewModelRepo(db),
		userRepo:              NewUserRepo(db),
		sessionRepo:           NewSessionRepo(db),
		adminUserRepo:         NewAdminUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ContactSubmissionRepo() *ContactSubmissionRepo {
	return d.contactSubmissionRepo
}

func (d Database) FAQRepo() *FAQRepo {
	return d.faqRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProductRepo() *ProductRepo {
	return d.productRepo
}

func (d Database) ModelRepo() *ModelRepo {
	return d.modelRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) SessionRepo() *SessionRepo {
	return d.sessionRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}
