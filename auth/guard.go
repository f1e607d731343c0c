package auth

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

// AdminStore is the admin allow-list lookup.
type AdminStore interface {
	IsAdmin(userID uuid.UUID) (bool, error)
	Grant(userID uuid.UUID) error
}

// Guard gates every admin operation: it requires an authenticated session
// whose user appears in the admin allow-list. A session that authenticates
// but is not an admin is force signed out, and the caller receives the same
// error as for no session at all, so the response does not reveal which
// accounts exist or which are admins.
type Guard struct {
	auth   *Service
	admins AdminStore
	logger zerolog.Logger
}

func NewGuard(service *Service, admins AdminStore) *Guard {
	return &Guard{
		auth:   service,
		admins: admins,
		logger: log.With().Str("handlerName", "sessionGuard").Logger(),
	}
}

// Authorize resolves the token and checks admin membership. No admin
// operation proceeds before this succeeds.
func (g *Guard) Authorize(token string) (*models.Session, error) {
	session, err := g.auth.CurrentSession(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errs.NewUnauthorizedError("authentication required")
	}

	isAdmin, err := g.admins.IsAdmin(session.UserID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "admin user", err)
	}
	if !isAdmin {
		// Authenticated but never granted admin rights: terminate the session.
		if err := g.auth.SignOut(token); err != nil {
			g.logger.Error().Err(err).Msg("failed to terminate non-admin session")
		}
		return nil, errs.NewUnauthorizedError("authentication required")
	}

	return session, nil
}
