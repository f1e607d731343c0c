package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) Add(user *models.User) error {
	f.byEmail[user.Email] = user
	return nil
}

type fakeSessionStore struct {
	byID map[uuid.UUID]*models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{byID: make(map[uuid.UUID]*models.Session)}
}

func (f *fakeSessionStore) FindByID(id uuid.UUID) (*models.Session, error) {
	return f.byID[id], nil
}

func (f *fakeSessionStore) Add(session *models.Session) error {
	f.byID[session.ID] = session
	return nil
}

func (f *fakeSessionStore) Delete(id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeAdminStore struct {
	admins map[uuid.UUID]bool
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[uuid.UUID]bool)}
}

func (f *fakeAdminStore) IsAdmin(userID uuid.UUID) (bool, error) {
	return f.admins[userID], nil
}

func (f *fakeAdminStore) Grant(userID uuid.UUID) error {
	f.admins[userID] = true
	return nil
}

func newTestService() (*Service, *fakeUserStore, *fakeSessionStore) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	service := NewService(users, sessions, []byte("test-secret"), time.Hour)
	return service, users, sessions
}

func TestSignUpAndSignIn(t *testing.T) {
	service, _, _ := newTestService()

	session, token, err := service.SignUp("owner@stride.shoes", "stride123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if session == nil || token == "" {
		t.Fatal("expected a session and token from SignUp")
	}

	got, err := service.CurrentSession(token)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if got == nil || got.ID != session.ID {
		t.Fatalf("CurrentSession = %+v, want session %s", got, session.ID)
	}

	if _, _, err := service.SignInWithPassword("owner@stride.shoes", "stride123"); err != nil {
		t.Fatalf("SignInWithPassword: %v", err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	service, _, _ := newTestService()

	if _, _, err := service.SignUp("owner@stride.shoes", "stride123"); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	_, _, err := service.SignUp("owner@stride.shoes", "other-password")
	if !errs.IsAlreadyRegistered(err) {
		t.Fatalf("expected already-registered error, got %v", err)
	}
}

func TestSignInBadCredentialsIndistinguishable(t *testing.T) {
	service, _, _ := newTestService()

	if _, _, err := service.SignUp("owner@stride.shoes", "stride123"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, _, wrongPassword := service.SignInWithPassword("owner@stride.shoes", "nope")
	_, _, unknownEmail := service.SignInWithPassword("ghost@stride.shoes", "nope")

	if !errs.IsInvalidCredentials(wrongPassword) || !errs.IsInvalidCredentials(unknownEmail) {
		t.Fatalf("expected invalid-credentials for both, got %v and %v", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestSignOutRevokesSession(t *testing.T) {
	service, _, _ := newTestService()

	_, token, err := service.SignUp("owner@stride.shoes", "stride123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if err := service.SignOut(token); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	got, err := service.CurrentSession(token)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if got != nil {
		t.Fatal("expected no session after sign out")
	}
}

func TestCurrentSessionGarbageToken(t *testing.T) {
	service, _, _ := newTestService()

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		got, err := service.CurrentSession(token)
		if err != nil {
			t.Fatalf("CurrentSession(%q): %v", token, err)
		}
		if got != nil {
			t.Fatalf("CurrentSession(%q) = %+v, want nil", token, got)
		}
	}
}

func TestCurrentSessionExpired(t *testing.T) {
	service, _, sessions := newTestService()

	session, token, err := service.SignUp("owner@stride.shoes", "stride123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	sessions.byID[session.ID].ExpiresAt = time.Now().Add(-time.Minute)

	got, err := service.CurrentSession(token)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if got != nil {
		t.Fatal("expected expired session to resolve to none")
	}
}

func TestGuardAllowsAdmin(t *testing.T) {
	service, _, _ := newTestService()
	admins := newFakeAdminStore()
	guard := NewGuard(service, admins)

	session, token, err := service.SignUp("owner@stride.shoes", "stride123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if err := admins.Grant(session.UserID); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	got, err := guard.Authorize(token)
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("Authorize returned session %s, want %s", got.ID, session.ID)
	}
}

func TestGuardTerminatesNonAdminSession(t *testing.T) {
	service, _, _ := newTestService()
	guard := NewGuard(service, newFakeAdminStore())

	_, token, err := service.SignUp("visitor@stride.shoes", "stride123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := guard.Authorize(token); !errs.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	// The valid but non-admin session must have been terminated.
	got, err := service.CurrentSession(token)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if got != nil {
		t.Fatal("non-admin session survived the guard")
	}
}

func TestGuardRejectsMissingSession(t *testing.T) {
	service, _, _ := newTestService()
	guard := NewGuard(service, newFakeAdminStore())

	if _, err := guard.Authorize(""); !errs.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for empty token, got %v", err)
	}
}
