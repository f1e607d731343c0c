package console

import (
	"sync"

	"github.com/google/uuid"

	"github.com/stride-footwear/site-backend/errs"
)

type FormState int

const (
	FormClosed FormState = iota
	FormEditing
)

// FormSpec wires a Form to one entity kind.
type FormSpec[R any, D any] struct {
	// NewDraft returns the type-specific defaults for a create, given the
	// current list length (used to seed sort_order).
	NewDraft func(listLen int) D

	// DraftFrom copies every editable field of a record into a draft,
	// substituting empty strings for absent optional fields. This is the one
	// place the null-to-empty conversion happens; the form itself never sees
	// a null.
	DraftFrom func(record *R) D

	// Validate performs the local non-empty checks. A draft that fails
	// validation never reaches the backend.
	Validate func(draft D) error

	// Create and Update perform the backend round-trip.
	Create func(draft D) error
	Update func(id uuid.UUID, draft D) error
}

// Form holds the mutable draft behind one modal editor. Its lifecycle is
// Closed -> (open new | open edit) -> Editing -> cancel, or save: success
// closes the form and triggers the list refresh, failure keeps it open with
// the draft intact so nothing the user typed is lost.
type Form[R any, D any] struct {
	mu        sync.Mutex
	spec      FormSpec[R, D]
	state     FormState
	draft     D
	editingID uuid.UUID // uuid.Nil while creating
	saveErr   error
	gen       uint64 // bumps on every open and cancel; stale saves are discarded
	onSaved   func()
}

func newForm[R any, D any](spec FormSpec[R, D], onSaved func()) *Form[R, D] {
	return &Form[R, D]{spec: spec, onSaved: onSaved}
}

func (f *Form[R, D]) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// OpenForCreate resets the draft to the entity's defaults.
func (f *Form[R, D]) OpenForCreate(listLen int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = f.spec.NewDraft(listLen)
	f.editingID = uuid.Nil
	f.state = FormEditing
	f.saveErr = nil
	f.gen++
}

// OpenForEdit seeds the draft from an existing record.
func (f *Form[R, D]) OpenForEdit(id uuid.UUID, record *R) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = f.spec.DraftFrom(record)
	f.editingID = id
	f.state = FormEditing
	f.saveErr = nil
	f.gen++
}

func (f *Form[R, D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the draft; individual field setters collapse into this.
func (f *Form[R, D]) SetDraft(draft D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// Err returns the error from the last failed save, if the form is still open.
func (f *Form[R, D]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saveErr
}

// Cancel closes the form and discards the draft. An in-flight save observes
// the generation change and its response is ignored.
func (f *Form[R, D]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = FormClosed
	f.saveErr = nil
	f.gen++
}

// Save validates the draft, performs the create or update, and on success
// closes the form and triggers the list refresh. On failure the form stays
// open with the draft and the error, so the user may retry.
func (f *Form[R, D]) Save() error {
	f.mu.Lock()
	if f.state != FormEditing {
		f.mu.Unlock()
		return errs.NewBadRequestError("no draft open")
	}
	draft := f.draft
	editingID := f.editingID
	gen := f.gen
	f.mu.Unlock()

	if err := f.spec.Validate(draft); err != nil {
		f.mu.Lock()
		if f.gen == gen {
			f.saveErr = err
		}
		f.mu.Unlock()
		return err
	}

	var err error
	if editingID == uuid.Nil {
		err = f.spec.Create(draft)
	} else {
		err = f.spec.Update(editingID, draft)
	}

	f.mu.Lock()
	if f.gen != gen {
		// The form was cancelled while the request was in flight. The
		// response is stale: drop it without touching state.
		f.mu.Unlock()
		return err
	}
	if err != nil {
		f.saveErr = err
		f.mu.Unlock()
		return err
	}
	f.state = FormClosed
	f.saveErr = nil
	f.gen++
	onSaved := f.onSaved
	f.mu.Unlock()

	if onSaved != nil {
		onSaved()
	}
	return nil
}
