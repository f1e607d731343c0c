package api

import (
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stride-footwear/site-backend/config"
	"github.com/stride-footwear/site-backend/errs"
)

// Uploads beyond this size are rejected before touching Cloudinary.
const maxUploadBytes = 10 << 20

// uploadHandler pushes admin-selected images to Cloudinary and hands back the
// hosted URL, which the console then stores in the entity's image_url field.
type uploadHandler struct {
	responder     Responder
	logger        zerolog.Logger
	cloudinaryURL string
	uploadFolder  string
}

func newUploadHandler(cfg map[string]string) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		cloudinaryURL: config.GetString(cfg, "CLOUDINARY_URL", ""),
		uploadFolder:  config.GetString(cfg, "CLOUDINARY_FOLDER", "stride"),
	}
}

type uploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// uploadImage accepts a multipart form with a "file" field and returns the
// secure Cloudinary URL of the stored image.
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.cloudinaryURL == "" {
			h.responder.WriteError(w, errs.NewInternalError("image uploads are not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid multipart form"))
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		cld, err := cloudinary.NewFromURL(h.cloudinaryURL)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to initialize Cloudinary client")
			h.responder.WriteError(w, errs.NewInternalError("failed to initialize image storage"))
			return
		}

		result, err := cld.Upload.Upload(r.Context(), file, uploader.UploadParams{
			Folder: h.uploadFolder,
		})
		if err != nil {
			h.logger.Error().Err(err).Msg("Cloudinary upload failed")
			h.responder.WriteError(w, errs.NewInternalError("image upload failed"))
			return
		}

		h.responder.WriteCreated(w, uploadResponse{
			URL:      result.SecureURL,
			PublicID: result.PublicID,
		})
	}
}
