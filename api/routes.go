package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public storefront reads, the auth endpoints, and the
// guarded admin console API.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public storefront routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/blog-posts", handlers.publicHandler.getPublishedPosts())
		r.Get("/blog-post/{slug}", handlers.publicHandler.getPublishedPost())
		r.Get("/faqs", handlers.publicHandler.getFaqs())
		r.Get("/categories", handlers.publicHandler.getCategories())
		r.Get("/category/{slug}", handlers.publicHandler.getCategoryDetail())
		r.Get("/models", handlers.publicHandler.getModels())
		r.Post("/contact", handlers.publicHandler.submitContact())

		r.Post("/auth/signup", handlers.authHandler.signUp())
		r.Post("/auth/login", handlers.authHandler.signIn())
		r.Post("/auth/logout", handlers.authHandler.signOut())
		r.Get("/auth/session", handlers.authHandler.currentSession())
	})

	// Admin console routes; nothing here runs before the session guard passes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.requireAdmin)

		r.Get("/admin/dashboard", handlers.dashboardHandler.getCounts())

		r.Get("/admin/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Post("/admin/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/admin/blog-post/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/admin/blog-post/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

		r.Get("/admin/faqs", handlers.faqHandler.getAllFaqs())
		r.Post("/admin/faq", handlers.faqHandler.createFaq())
		r.Put("/admin/faq/{faqID}", handlers.faqHandler.updateFaq())
		r.Delete("/admin/faq/{faqID}", handlers.faqHandler.deleteFaq())

		r.Get("/admin/categories", handlers.categoryHandler.getAllCategories())
		r.Post("/admin/category", handlers.categoryHandler.createCategory())
		r.Put("/admin/category/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/admin/category/{categoryID}", handlers.categoryHandler.deleteCategory())

		r.Get("/admin/products", handlers.productHandler.getAllProducts())
		r.Post("/admin/product", handlers.productHandler.createProduct())
		r.Put("/admin/product/{productID}", handlers.productHandler.updateProduct())
		r.Delete("/admin/product/{productID}", handlers.productHandler.deleteProduct())

		r.Get("/admin/models", handlers.modelHandler.getAllModels())
		r.Post("/admin/model", handlers.modelHandler.createModel())
		r.Put("/admin/model/{modelID}", handlers.modelHandler.updateModel())
		r.Delete("/admin/model/{modelID}", handlers.modelHandler.deleteModel())

		r.Get("/admin/messages", handlers.messageHandler.getAllMessages())
		r.Put("/admin/message/{messageID}/read", handlers.messageHandler.markMessageRead())
		r.Delete("/admin/message/{messageID}", handlers.messageHandler.deleteMessage())

		r.Post("/admin/upload", handlers.uploadHandler.uploadImage())
	})
}
