package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/stride-footwear/site-backend/database"
	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

type categoryPayload struct {
	Name            *string   `json:"name"`
	Slug            *string   `json:"slug"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	ImageURL        *string   `json:"image_url"`
	Features        *[]string `json:"features"`
}

func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload categoryPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if payload.Name == nil || *payload.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		category := models.Category{
			Name: *payload.Name,
		}
		if payload.Slug != nil && *payload.Slug != "" {
			category.Slug = *payload.Slug
		} else {
			category.Slug = models.DeriveSlug(category.Name)
		}
		if payload.Description != nil {
			category.Description = nullable(*payload.Description)
		}
		if payload.LongDescription != nil {
			category.LongDescription = nullable(*payload.LongDescription)
		}
		if payload.ImageURL != nil {
			category.ImageURL = nullable(*payload.ImageURL)
		}
		if payload.Features != nil {
			category.Features = datatypes.NewJSONSlice(*payload.Features)
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create category", "category", err))
			return
		}

		h.responder.WriteCreated(w, category)
	}
}

func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		existing, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		var payload categoryPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		fields := map[string]any{}
		if payload.Name != nil {
			if *payload.Name == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
				return
			}
			fields["name"] = *payload.Name
		}
		if payload.Slug != nil {
			slug := *payload.Slug
			if slug == "" {
				name := existing.Name
				if payload.Name != nil {
					name = *payload.Name
				}
				slug = models.DeriveSlug(name)
			}
			fields["slug"] = slug
		}
		if payload.Description != nil {
			fields["description"] = nullable(*payload.Description)
		}
		if payload.LongDescription != nil {
			fields["long_description"] = nullable(*payload.LongDescription)
		}
		if payload.ImageURL != nil {
			fields["image_url"] = nullable(*payload.ImageURL)
		}
		if payload.Features != nil {
			fields["features"] = datatypes.NewJSONSlice(*payload.Features)
		}

		if len(fields) > 0 {
			if err := h.categoryRepo.UpdateFields(categoryID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update category", "category", err))
				return
			}
		}

		updated, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated category", "category", err))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

// deleteCategory removes a category. Products pointing at it are unlinked
// inside the same transaction, never deleted.
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete category", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}
