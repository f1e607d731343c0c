package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stride-footwear/site-backend/database"
	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

type modelHandler struct {
	responder Responder
	logger    zerolog.Logger
	modelRepo *database.ModelRepo
}

func newModelHandler(modelRepo *database.ModelRepo) modelHandler {
	logger := log.With().Str("handlerName", "modelHandler").Logger()

	return modelHandler{
		responder: NewResponder(logger),
		logger:    logger,
		modelRepo: modelRepo,
	}
}

type modelPayload struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Quote       *string `json:"quote"`
	ImageURL    *string `json:"image_url"`
	SortOrder   *int    `json:"sort_order"`
}

func (h modelHandler) getAllModels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandModels, err := h.modelRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find models", "models", err))
			return
		}
		h.responder.WriteJSON(w, brandModels)
	}
}

// createModel creates a brand ambassador entry. Name, quote and image are all
// mandatory; the showcase cannot render a card without them.
func (h modelHandler) createModel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload modelPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode model request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if payload.Name == nil || *payload.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if payload.Quote == nil || *payload.Quote == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("quote"))
			return
		}
		if payload.ImageURL == nil || *payload.ImageURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_url"))
			return
		}

		model := models.Model{
			Name:     *payload.Name,
			Quote:    *payload.Quote,
			ImageURL: *payload.ImageURL,
		}
		if payload.Designation != nil {
			model.Designation = *payload.Designation
		}
		if payload.SortOrder != nil {
			model.SortOrder = *payload.SortOrder
		} else {
			existing, err := h.modelRepo.FindAll()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find models", "models", err))
				return
			}
			model.SortOrder = len(existing)
		}

		if err := h.modelRepo.Add(&model); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create model", "model", err))
			return
		}

		h.responder.WriteCreated(w, model)
	}
}

func (h modelHandler) updateModel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modelID, err := uuid.Parse(chi.URLParam(r, "modelID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid modelID"))
			return
		}

		var payload modelPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode model request body")
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
		if payload.Quote != nil {
			if *payload.Quote == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("quote"))
				return
			}
			fields["quote"] = *payload.Quote
		}
		if payload.ImageURL != nil {
			if *payload.ImageURL == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_url"))
				return
			}
			fields["image_url"] = *payload.ImageURL
		}
		if payload.Designation != nil {
			fields["designation"] = *payload.Designation
		}
		if payload.SortOrder != nil {
			fields["sort_order"] = *payload.SortOrder
		}

		if len(fields) > 0 {
			if err := h.modelRepo.UpdateFields(modelID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update model", "model", err))
				return
			}
		}

		updated, err := h.modelRepo.FindByID(modelID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated model", "model", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("model not found"))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h modelHandler) deleteModel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modelID, err := uuid.Parse(chi.URLParam(r, "modelID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid modelID"))
			return
		}

		if err := h.modelRepo.Delete(modelID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete model", "model", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "model deleted successfully",
		})
	}
}
