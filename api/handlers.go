package api

import (
	"github.com/stride-footwear/site-backend/auth"
	"github.com/stride-footwear/site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, authService *auth.Service, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		publicHandler:    newPublicHandler(database, cfg),
		authHandler:      newAuthHandler(authService, database.AdminUserRepo()),
		dashboardHandler: newDashboardHandler(database),
		blogPostHandler:  newBlogPostHandler(database.BlogPostRepo()),
		faqHandler:       newFaqHandler(database.FAQRepo()),
		categoryHandler:  newCategoryHandler(database.CategoryRepo()),
		productHandler:   newProductHandler(database.ProductRepo()),
		modelHandler:     newModelHandler(database.ModelRepo()),
		messageHandler:   newMessageHandler(database.ContactSubmissionRepo()),
		uploadHandler:    newUploadHandler(cfg),
	}
}
