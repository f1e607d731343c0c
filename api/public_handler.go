package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stride-footwear/site-backend/database"
	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
	"github.com/stride-footwear/site-backend/services"
)

// Contact form field limits. Inputs are trimmed before the limits apply.
const (
	maxContactNameLen    = 100
	maxContactEmailLen   = 255
	maxContactSubjectLen = 200
	maxContactMessageLen = 2000
)

// publicHandler serves the unauthenticated storefront endpoints: published
// posts, FAQ and category listings, the ambassador showcase, and the contact
// form intake.
type publicHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
	notifier  *services.ContactNotifier
}

func newPublicHandler(database database.Database, cfg map[string]string) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
		notifier:  services.NewContactNotifier(cfg),
	}
}

// getPublishedPosts lists published posts only; drafts never leak here.
func (h publicHandler) getPublishedPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.database.BlogPostRepo().FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published posts", "blog_posts", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

// getPublishedPost fetches a single published post by slug. Unpublished posts
// 404 exactly like missing ones.
func (h publicHandler) getPublishedPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		post, err := h.database.BlogPostRepo().FindPublishedBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published post", "blog_post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

func (h publicHandler) getFaqs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		faqs, err := h.database.FAQRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find faqs", "faqs", err))
			return
		}
		h.responder.WriteJSON(w, faqs)
	}
}

func (h publicHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.database.CategoryRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

// categoryDetailResponse is a category plus the products linked to it, the
// shape the storefront category page renders from.
type categoryDetailResponse struct {
	Category *models.Category  `json:"category"`
	Products []*models.Product `json:"products"`
}

func (h publicHandler) getCategoryDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		category, err := h.database.CategoryRepo().FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		products, err := h.database.ProductRepo().FindByCategory(category.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category products", "products", err))
			return
		}

		h.responder.WriteJSON(w, categoryDetailResponse{
			Category: category,
			Products: products,
		})
	}
}

func (h publicHandler) getModels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandModels, err := h.database.ModelRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find models", "models", err))
			return
		}
		h.responder.WriteJSON(w, brandModels)
	}
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// validateContact trims the payload and enforces the form limits. It returns
// the first violation so the form can highlight a single field.
func validateContact(payload *contactPayload) *errs.ApiErr {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Subject = strings.TrimSpace(payload.Subject)
	payload.Message = strings.TrimSpace(payload.Message)

	if payload.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if len(payload.Name) > maxContactNameLen {
		return errs.NewInvalidFieldError("name", "must be at most 100 characters")
	}
	if payload.Email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if len(payload.Email) > maxContactEmailLen {
		return errs.NewInvalidFieldError("email", "must be at most 255 characters")
	}
	if !strings.Contains(payload.Email, "@") {
		return errs.NewInvalidFieldError("email", "must be a valid email address")
	}
	if len(payload.Subject) > maxContactSubjectLen {
		return errs.NewInvalidFieldError("subject", "must be at most 200 characters")
	}
	if payload.Message == "" {
		return errs.NewMissingRequiredFieldError("message")
	}
	if len(payload.Message) > maxContactMessageLen {
		return errs.NewInvalidFieldError("message", "must be at most 2000 characters")
	}
	return nil
}

// submitContact stores a contact form submission and fires a best-effort
// email notification. The notification failing never fails the request.
func (h publicHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contactPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if apiErr := validateContact(&payload); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		submission := models.ContactSubmission{
			Name:    payload.Name,
			Email:   payload.Email,
			Subject: nullable(payload.Subject),
			Message: payload.Message,
		}

		if err := h.database.ContactSubmissionRepo().Add(&submission); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact submission", "contact_submission", err))
			return
		}

		go func() {
			if err := h.notifier.Notify(submission); err != nil {
				h.logger.Error().Err(err).Msg("Failed to send contact notification")
			}
		}()

		h.responder.WriteCreated(w, map[string]string{
			"status":  "success",
			"message": "thanks for reaching out, we'll get back to you soon",
		})
	}
}
