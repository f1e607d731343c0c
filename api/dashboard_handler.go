package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stride-footwear/site-backend/database"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newDashboardHandler(database database.Database) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

// dashboardCounts is the summary card data on the admin landing page.
type dashboardCounts struct {
	BlogPosts      int `json:"blog_posts"`
	PublishedPosts int `json:"published_posts"`
	Faqs           int `json:"faqs"`
	Categories     int `json:"categories"`
	Products       int `json:"products"`
	Models         int `json:"models"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unread_messages"`
}

// getCounts computes entity totals from full listings. The tables are small
// enough that dedicated COUNT queries are not worth the extra repo surface.
func (h dashboardHandler) getCounts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.database.BlogPostRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}
		faqs, err := h.database.FAQRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find faqs", "faqs", err))
			return
		}
		categories, err := h.database.CategoryRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}
		products, err := h.database.ProductRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find products", "products", err))
			return
		}
		brandModels, err := h.database.ModelRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find models", "models", err))
			return
		}
		messages, err := h.database.ContactSubmissionRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find messages", "messages", err))
			return
		}

		counts := dashboardCounts{
			BlogPosts:  len(posts),
			Faqs:       len(faqs),
			Categories: len(categories),
			Products:   len(products),
			Models:     len(brandModels),
			Messages:   len(messages),
		}
		for _, p := range posts {
			if p.Published {
				counts.PublishedPosts++
			}
		}
		for _, m := range messages {
			if !m.IsRead {
				counts.UnreadMessages++
			}
		}

		h.responder.WriteJSON(w, counts)
	}
}
