package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stride-footwear/site-backend/auth"
	"github.com/stride-footwear/site-backend/database"
	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

const minPasswordLen = 6

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	authService   *auth.Service
	adminUserRepo *database.AdminUserRepo
}

func newAuthHandler(authService *auth.Service, adminUserRepo *database.AdminUserRepo) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		authService:   authService,
		adminUserRepo: adminUserRepo,
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse is returned by signUp, signIn and currentSession. Token is
// only populated when a new session was just issued.
type sessionResponse struct {
	Session *models.Session `json:"session"`
	Token   string          `json:"token,omitempty"`
}

func validateCredentials(payload *credentialsPayload) *errs.ApiErr {
	payload.Email = strings.TrimSpace(payload.Email)

	if payload.Email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if !strings.Contains(payload.Email, "@") {
		return errs.NewInvalidFieldError("email", "must be a valid email address")
	}
	if payload.Password == "" {
		return errs.NewMissingRequiredFieldError("password")
	}
	if len(payload.Password) < minPasswordLen {
		return errs.NewInvalidFieldError("password", "must be at least 6 characters")
	}
	return nil
}

// signUp registers a new account and grants it admin capability. The site has
// no self-service signup page, so anyone reaching this endpoint is being
// onboarded as an admin; a failed grant is logged and the account kept.
func (h authHandler) signUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload credentialsPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode signup request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if apiErr := validateCredentials(&payload); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		session, token, err := h.authService.SignUp(payload.Email, payload.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.adminUserRepo.Grant(session.UserID); err != nil {
			h.logger.Error().Err(err).Str("userId", session.UserID.String()).
				Msg("Failed to grant admin to new account")
		}

		h.responder.WriteCreated(w, sessionResponse{Session: session, Token: token})
	}
}

func (h authHandler) signIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload credentialsPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if apiErr := validateCredentials(&payload); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		session, token, err := h.authService.SignInWithPassword(payload.Email, payload.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, sessionResponse{Session: session, Token: token})
	}
}

// signOut revokes the caller's session. Always succeeds, even with a missing
// or invalid token.
func (h authHandler) signOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.authService.SignOut(bearerToken(r)); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "signed out",
		})
	}
}

// currentSession reports the session behind the caller's token, or a null
// session when the token is missing, invalid, expired or revoked.
func (h authHandler) currentSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := h.authService.CurrentSession(bearerToken(r))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, sessionResponse{Session: session})
	}
}
