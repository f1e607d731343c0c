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

type faqHandler struct {
	responder Responder
	logger    zerolog.Logger
	faqRepo   *database.FAQRepo
}

func newFaqHandler(faqRepo *database.FAQRepo) faqHandler {
	logger := log.With().Str("handlerName", "faqHandler").Logger()

	return faqHandler{
		responder: NewResponder(logger),
		logger:    logger,
		faqRepo:   faqRepo,
	}
}

type faqPayload struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	SortOrder *int    `json:"sort_order"`
}

func (h faqHandler) getAllFaqs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		faqs, err := h.faqRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find faqs", "faqs", err))
			return
		}
		h.responder.WriteJSON(w, faqs)
	}
}

// createFaq creates a new FAQ entry. When sort_order is absent it defaults to
// the current list length, appending the entry at the end.
func (h faqHandler) createFaq() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload faqPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode faq request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if payload.Question == nil || *payload.Question == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("question"))
			return
		}
		if payload.Answer == nil || *payload.Answer == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("answer"))
			return
		}

		faq := models.FAQ{
			Question: *payload.Question,
			Answer:   *payload.Answer,
		}
		if payload.SortOrder != nil {
			faq.SortOrder = *payload.SortOrder
		} else {
			existing, err := h.faqRepo.FindAll()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find faqs", "faqs", err))
				return
			}
			faq.SortOrder = len(existing)
		}

		if err := h.faqRepo.Add(&faq); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create faq", "faq", err))
			return
		}

		h.responder.WriteCreated(w, faq)
	}
}

func (h faqHandler) updateFaq() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		faqID, err := uuid.Parse(chi.URLParam(r, "faqID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid faqID"))
			return
		}

		var payload faqPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode faq request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		fields := map[string]any{}
		if payload.Question != nil {
			if *payload.Question == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("question"))
				return
			}
			fields["question"] = *payload.Question
		}
		if payload.Answer != nil {
			if *payload.Answer == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("answer"))
				return
			}
			fields["answer"] = *payload.Answer
		}
		if payload.SortOrder != nil {
			fields["sort_order"] = *payload.SortOrder
		}

		if len(fields) > 0 {
			if err := h.faqRepo.UpdateFields(faqID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update faq", "faq", err))
				return
			}
		}

		updated, err := h.faqRepo.FindByID(faqID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated faq", "faq", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("faq not found"))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h faqHandler) deleteFaq() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		faqID, err := uuid.Parse(chi.URLParam(r, "faqID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid faqID"))
			return
		}

		if err := h.faqRepo.Delete(faqID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete faq", "faq", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "faq deleted successfully",
		})
	}
}
