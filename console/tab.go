package console

import (
	"sync"

	"github.com/google/uuid"

	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

// entityStore is the slice of the entity repository a tab drives.
type entityStore[R any] interface {
	FindAll() ([]*R, error)
	Add(record *R) error
	UpdateFields(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

// Tab is one entity tab of the admin console: the fetched list plus the modal
// form editing it. Every mutation is followed by a full re-list; the tab
// never patches its view incrementally.
type Tab[R any, D any] struct {
	mu      sync.Mutex
	name    string
	store   entityStore[R]
	form    *Form[R, D]
	records []*R
	loadErr error
}

func newTab[R any, D any](name string, store entityStore[R], spec FormSpec[R, D]) *Tab[R, D] {
	t := &Tab[R, D]{name: name, store: store}
	t.form = newForm(spec, func() { _ = t.Refresh() })
	return t
}

// Refresh re-lists the collection. On failure the tab renders as empty
// rather than blocking the rest of the console.
func (t *Tab[R, D]) Refresh() error {
	records, err := t.store.FindAll()

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.records = nil
		t.loadErr = errs.NewDatabaseError("list", t.name, err)
		return t.loadErr
	}
	t.records = records
	t.loadErr = nil
	return nil
}

func (t *Tab[R, D]) Records() []*R {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.records
}

func (t *Tab[R, D]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// LoadErr returns the error from the last failed refresh, if any.
func (t *Tab[R, D]) LoadErr() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadErr
}

func (t *Tab[R, D]) Form() *Form[R, D] {
	return t.form
}

func (t *Tab[R, D]) OpenForCreate() {
	t.form.OpenForCreate(t.Len())
}

func (t *Tab[R, D]) OpenForEdit(id uuid.UUID, record *R) {
	t.form.OpenForEdit(id, record)
}

// Delete removes a record and re-lists. The caller is responsible for user
// confirmation before calling; there is no undo.
func (t *Tab[R, D]) Delete(id uuid.UUID) error {
	if err := t.store.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", t.name, err)
	}
	return t.Refresh()
}

// messageStore is the read-mostly slice of the contact submission repository.
type messageStore interface {
	FindAll() ([]*models.ContactSubmission, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// MessageList is the messages tab. Submissions are created by visitors, never
// edited; the admin may only mark them read or delete them.
type MessageList struct {
	mu      sync.Mutex
	store   messageStore
	records []*models.ContactSubmission
	loadErr error
}

func newMessageList(store messageStore) *MessageList {
	return &MessageList{store: store}
}

func (m *MessageList) Refresh() error {
	records, err := m.store.FindAll()

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.records = nil
		m.loadErr = errs.NewDatabaseError("list", "contact submissions", err)
		return m.loadErr
	}
	m.records = records
	m.loadErr = nil
	return nil
}

func (m *MessageList) Records() []*models.ContactSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records
}

func (m *MessageList) MarkRead(id uuid.UUID) error {
	if err := m.store.MarkRead(id); err != nil {
		return errs.NewDatabaseError("update", "contact submission", err)
	}
	return m.Refresh()
}

// Delete removes a submission. The caller confirms first; there is no undo.
func (m *MessageList) Delete(id uuid.UUID) error {
	if err := m.store.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "contact submission", err)
	}
	return m.Refresh()
}
