package api

import (
	"context"

	"github.com/stride-footwear/site-backend/models"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession adds the admin session to the context
func ctxWithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession retrieves the admin session from the context, or nil
func ctxGetSession(ctx context.Context) *models.Session {
	if session, ok := ctx.Value(sessionKey).(*models.Session); ok {
		return session
	}
	return nil
}
