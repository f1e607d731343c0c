package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	Add(user *models.User) error
}

// SessionStore persists login sessions. Deleting a session revokes it:
// tokens whose session row is gone no longer authenticate.
type SessionStore interface {
	FindByID(id uuid.UUID) (*models.Session, error)
	Add(session *models.Session) error
	Delete(id uuid.UUID) error
}

// Service implements password sign-up/sign-in and server-side sessions.
// Tokens are HS256 JWTs carrying the session id; CurrentSession only accepts
// a token whose session row still exists and has not expired.
type Service struct {
	users    UserStore
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewService(users UserStore, sessions SessionStore, secret []byte, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		secret:   secret,
		ttl:      ttl,
		logger:   log.With().Str("handlerName", "authService").Logger(),
	}
}

// SignUp registers a new account and opens a session for it.
func (s *Service) SignUp(email, password string) (*models.Session, string, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", errs.NewDatabaseError("find", "user", err)
	}
	if existing != nil {
		return nil, "", errs.NewAlreadyRegisteredError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errs.NewInternalError("failed to hash password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Add(user); err != nil {
		return nil, "", errs.NewDatabaseError("create", "user", err)
	}

	return s.issueSession(user.ID)
}

// SignInWithPassword opens a session for an existing account. Unknown email
// and wrong password produce the same error.
func (s *Service) SignInWithPassword(email, password string) (*models.Session, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, "", errs.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errs.NewInvalidCredentialsError()
	}

	return s.issueSession(user.ID)
}

// CurrentSession resolves a token to its session. A missing, malformed,
// expired or revoked token yields (nil, nil): absence of a session is not an
// error.
func (s *Service) CurrentSession(token string) (*models.Session, error) {
	sessionID, _, ok := s.parseToken(token)
	if !ok {
		return nil, nil
	}

	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "session", err)
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return session, nil
}

// SignOut revokes the token's session. Signing out with an invalid token is a
// no-op.
func (s *Service) SignOut(token string) error {
	sessionID, _, ok := s.parseToken(token)
	if !ok {
		return nil
	}
	if err := s.sessions.Delete(sessionID); err != nil {
		return errs.NewDatabaseError("delete", "session", err)
	}
	return nil
}

func (s *Service) issueSession(userID uuid.UUID) (*models.Session, string, error) {
	now := time.Now()
	session := &models.Session{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.sessions.Add(session); err != nil {
		return nil, "", errs.NewDatabaseError("create", "session", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        session.ID.String(),
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", errs.NewInternalError("failed to sign session token")
	}

	return session, token, nil
}

// parseToken verifies the JWT and extracts the session and user ids.
func (s *Service) parseToken(token string) (sessionID, userID uuid.UUID, ok bool) {
	if token == "" {
		return uuid.Nil, uuid.Nil, false
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err = uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	userID, err = uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return sessionID, userID, true
}
