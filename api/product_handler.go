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

type productHandler struct {
	responder   Responder
	logger      zerolog.Logger
	productRepo *database.ProductRepo
}

func newProductHandler(productRepo *database.ProductRepo) productHandler {
	logger := log.With().Str("handlerName", "productHandler").Logger()

	return productHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		productRepo: productRepo,
	}
}

// productPayload carries the editable fields of a product. CategoryID is a
// string so an empty value can clear the link.
type productPayload struct {
	CategoryID  *string `json:"category_id"`
	Name        *string `json:"name"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

// categoryRef parses the category_id field: empty string means unlinked.
func categoryRef(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (h productHandler) getAllProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := h.productRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find products", "products", err))
			return
		}
		h.responder.WriteJSON(w, products)
	}
}

func (h productHandler) createProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode product request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if payload.Name == nil || *payload.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if payload.Price == nil || *payload.Price == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("price"))
			return
		}

		product := models.Product{
			Name:  *payload.Name,
			Price: *payload.Price,
		}
		if payload.CategoryID != nil {
			ref, err := categoryRef(*payload.CategoryID)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("category_id", "must be a UUID"))
				return
			}
			product.CategoryID = ref
		}
		if payload.ImageURL != nil {
			product.ImageURL = nullable(*payload.ImageURL)
		}
		if payload.Description != nil {
			product.Description = nullable(*payload.Description)
		}
		if payload.SortOrder != nil {
			product.SortOrder = *payload.SortOrder
		} else {
			existing, err := h.productRepo.FindAll()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find products", "products", err))
				return
			}
			product.SortOrder = len(existing)
		}

		if err := h.productRepo.Add(&product); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create product", "product", err))
			return
		}

		h.responder.WriteCreated(w, product)
	}
}

func (h productHandler) updateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid productID"))
			return
		}

		var payload productPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode product request body")
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
		if payload.Price != nil {
			if *payload.Price == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("price"))
				return
			}
			fields["price"] = *payload.Price
		}
		if payload.CategoryID != nil {
			ref, err := categoryRef(*payload.CategoryID)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("category_id", "must be a UUID"))
				return
			}
			fields["category_id"] = ref
		}
		if payload.ImageURL != nil {
			fields["image_url"] = nullable(*payload.ImageURL)
		}
		if payload.Description != nil {
			fields["description"] = nullable(*payload.Description)
		}
		if payload.SortOrder != nil {
			fields["sort_order"] = *payload.SortOrder
		}

		if len(fields) > 0 {
			if err := h.productRepo.UpdateFields(productID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update product", "product", err))
				return
			}
		}

		updated, err := h.productRepo.FindByID(productID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated product", "product", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("product not found"))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h productHandler) deleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid productID"))
			return
		}

		if err := h.productRepo.Delete(productID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete product", "product", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "product deleted successfully",
		})
	}
}
