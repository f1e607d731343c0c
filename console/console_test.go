package console

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

// fakeFAQStore is an in-memory entityStore for the FAQ collection.
type fakeFAQStore struct {
	mu       sync.Mutex
	order    []uuid.UUID
	records  map[uuid.UUID]*models.FAQ
	listErr  error
	addErr   error
	addCalls int
}

func newFakeFAQStore() *fakeFAQStore {
	return &fakeFAQStore{records: make(map[uuid.UUID]*models.FAQ)}
}

func (f *fakeFAQStore) FindAll() ([]*models.FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.FAQ, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.records[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeFAQStore) Add(faq *models.FAQ) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	faq.ID = uuid.New()
	copied := *faq
	f.records[faq.ID] = &copied
	f.order = append(f.order, faq.ID)
	return nil
}

func (f *fakeFAQStore) UpdateFields(id uuid.UUID, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	faq, ok := f.records[id]
	if !ok {
		return errors.New("not found")
	}
	if q, ok := fields["question"].(string); ok {
		faq.Question = q
	}
	if a, ok := fields["answer"].(string); ok {
		faq.Answer = a
	}
	if s, ok := fields["sort_order"].(int); ok {
		faq.SortOrder = s
	}
	return nil
}

func (f *fakeFAQStore) Delete(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// blockingFAQStore parks Add until released, to simulate a slow backend call.
type blockingFAQStore struct {
	*fakeFAQStore
	release chan struct{}
}

func (b *blockingFAQStore) Add(faq *models.FAQ) error {
	<-b.release
	return b.fakeFAQStore.Add(faq)
}

func TestTabCreateThenListShowsOnce(t *testing.T) {
	store := newFakeFAQStore()
	tab := newFAQTab(store)

	tab.OpenForCreate()
	tab.Form().SetDraft(FAQDraft{Question: "Sizing?", Answer: "True to size."})
	if err := tab.Form().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if tab.Form().State() != FormClosed {
		t.Error("form should close after a successful save")
	}
	records := tab.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record after refresh, got %d", len(records))
	}
	if records[0].ID == uuid.Nil {
		t.Error("expected server-assigned id")
	}
	if records[0].Question != "Sizing?" {
		t.Errorf("question = %q", records[0].Question)
	}
}

func TestFormDefaultsSeedSortOrder(t *testing.T) {
	store := newFakeFAQStore()
	tab := newFAQTab(store)

	for _, q := range []string{"a", "b", "c"} {
		tab.OpenForCreate()
		tab.Form().SetDraft(FAQDraft{Question: q, Answer: q})
		if err := tab.Form().Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	tab.OpenForCreate()
	if got := tab.Form().Draft().SortOrder; got != 3 {
		t.Errorf("new draft sort_order = %d, want list length 3", got)
	}
}

func TestFormValidationNeverReachesBackend(t *testing.T) {
	store := newFakeFAQStore()
	tab := newFAQTab(store)

	tab.OpenForCreate()
	tab.Form().SetDraft(FAQDraft{Question: "", Answer: "orphaned"})
	err := tab.Form().Save()
	if !errs.IsMissingRequiredField(err) {
		t.Fatalf("expected missing-field error, got %v", err)
	}
	if store.addCalls != 0 {
		t.Errorf("validation failure reached the backend: %d calls", store.addCalls)
	}
	if tab.Form().State() != FormEditing {
		t.Error("form should stay open after a validation failure")
	}
}

func TestFormSaveFailureKeepsDraftAndError(t *testing.T) {
	store := newFakeFAQStore()
	store.addErr = errors.New("connection refused")
	tab := newFAQTab(store)

	tab.OpenForCreate()
	draft := FAQDraft{Question: "Shipping?", Answer: "Worldwide.", SortOrder: 5}
	tab.Form().SetDraft(draft)

	if err := tab.Form().Save(); err == nil {
		t.Fatal("expected save to fail")
	}
	if tab.Form().State() != FormEditing {
		t.Fatal("form must stay open so the draft is not lost")
	}
	if got := tab.Form().Draft(); got != draft {
		t.Errorf("draft changed after failed save: %+v", got)
	}
	if tab.Form().Err() == nil {
		t.Error("expected the save error to be surfaced")
	}

	// The backend recovers; retrying the same draft succeeds.
	store.addErr = nil
	if err := tab.Form().Save(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if tab.Form().State() != FormClosed {
		t.Error("form should close after the retry succeeds")
	}
	if len(tab.Records()) != 1 {
		t.Errorf("expected 1 record, got %d", len(tab.Records()))
	}
}

func TestFormEditSeedsAndSaves(t *testing.T) {
	store := newFakeFAQStore()
	tab := newFAQTab(store)

	tab.OpenForCreate()
	tab.Form().SetDraft(FAQDraft{Question: "Returns?", Answer: "30 days.", SortOrder: 2})
	if err := tab.Form().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	record := tab.Records()[0]

	tab.OpenForEdit(record.ID, record)
	draft := tab.Form().Draft()
	if draft.Question != "Returns?" || draft.SortOrder != 2 {
		t.Fatalf("draft not seeded from record: %+v", draft)
	}

	draft.Answer = "60 days."
	tab.Form().SetDraft(draft)
	if err := tab.Form().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	records := tab.Records()
	if len(records) != 1 {
		t.Fatalf("edit must not duplicate the record, got %d", len(records))
	}
	if records[0].Answer != "60 days." || records[0].Question != "Returns?" {
		t.Errorf("unexpected record after edit: %+v", records[0])
	}
}

func TestFormStaleSaveDiscarded(t *testing.T) {
	store := &blockingFAQStore{fakeFAQStore: newFakeFAQStore(), release: make(chan struct{})}
	tab := newFAQTab(store)

	tab.OpenForCreate()
	tab.Form().SetDraft(FAQDraft{Question: "Slow?", Answer: "Very."})

	done := make(chan error, 1)
	go func() { done <- tab.Form().Save() }()

	// User closes the modal while the save is still in flight.
	tab.Form().Cancel()
	close(store.release)
	<-done

	if tab.Form().State() != FormClosed {
		t.Error("cancelled form must stay closed when the stale response lands")
	}
	if tab.Form().Err() != nil {
		t.Errorf("stale response must not surface an error: %v", tab.Form().Err())
	}
	if got := len(tab.Records()); got != 0 {
		t.Errorf("stale save must not refresh the list, got %d records", got)
	}
}

func TestTabDeleteRefreshes(t *testing.T) {
	store := newFakeFAQStore()
	tab := newFAQTab(store)

	tab.OpenForCreate()
	tab.Form().SetDraft(FAQDraft{Question: "Gone?", Answer: "Soon."})
	if err := tab.Form().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	id := tab.Records()[0].ID

	if err := tab.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(tab.Records()) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(tab.Records()))
	}
}

func TestPostDraftNullBoundary(t *testing.T) {
	spec := newPostTab(newFakePostStore()).form.spec
	post := &models.BlogPost{
		Title:   "Bare",
		Slug:    "bare",
		Content: "minimal",
		Author:  DefaultAuthor,
	}

	draft := spec.DraftFrom(post)
	if draft.Excerpt != "" || draft.ImageURL != "" {
		t.Errorf("absent optionals must become empty strings: %+v", draft)
	}

	fields := draft.fields()
	if fields["excerpt"] != (*string)(nil) {
		t.Errorf("empty excerpt must be stored as null, got %#v", fields["excerpt"])
	}
}

func TestPostDraftDerivesSlugWhenBlank(t *testing.T) {
	draft := PostDraft{Title: "Hello, World! 2024", Content: "x", Author: DefaultAuthor}
	if got := draft.fields()["slug"]; got != "hello-world-2024" {
		t.Errorf("slug = %v, want hello-world-2024", got)
	}

	keep := PostDraft{Title: "Hello", Slug: "custom-slug", Content: "x", Author: DefaultAuthor}
	if got := keep.fields()["slug"]; got != "custom-slug" {
		t.Errorf("supplied slug must be kept, got %v", got)
	}
}

func TestSplitFeatures(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"Waterproof", 1},
		{"Waterproof, Breathable, Light", 3},
		{" , ,Grip, ", 1},
	}
	for _, tc := range cases {
		if got := SplitFeatures(tc.in); len(got) != tc.want {
			t.Errorf("SplitFeatures(%q) = %v, want %d items", tc.in, got, tc.want)
		}
	}
}

// fakeMessageStore backs the messages tab.
type fakeMessageStore struct {
	mu      sync.Mutex
	order   []uuid.UUID
	records map[uuid.UUID]*models.ContactSubmission
}

func newFakeMessageStore(messages ...*models.ContactSubmission) *fakeMessageStore {
	f := &fakeMessageStore{records: make(map[uuid.UUID]*models.ContactSubmission)}
	for _, m := range messages {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		f.records[m.ID] = m
		f.order = append(f.order, m.ID)
	}
	return f
}

func (f *fakeMessageStore) FindAll() ([]*models.ContactSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.ContactSubmission, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.records[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeMessageStore) MarkRead(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.records[id]
	if !ok {
		return errors.New("not found")
	}
	m.IsRead = true
	return nil
}

func (f *fakeMessageStore) Delete(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestMessageListMarkRead(t *testing.T) {
	msg := &models.ContactSubmission{Name: "Ana", Email: "ana@example.com", Message: "Hi"}
	list := newMessageList(newFakeMessageStore(msg))

	if err := list.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := list.MarkRead(msg.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !list.Records()[0].IsRead {
		t.Error("message should be read after MarkRead")
	}
}

type fakeAuthorizer struct {
	session *models.Session
	err     error
}

func (f fakeAuthorizer) Authorize(string) (*models.Session, error) {
	return f.session, f.err
}

func newTestConsole(faqs *fakeFAQStore, messages *fakeMessageStore, guard Authorizer) *Console {
	return &Console{
		guard:      guard,
		Posts:      newPostTab(newFakePostStore()),
		Faqs:       newFAQTab(faqs),
		Categories: newCategoryTab(newFakeCategoryStore()),
		Products:   newProductTab(newFakeProductStore()),
		Models:     newModelTab(newFakeModelStore()),
		Messages:   newMessageList(messages),
		active:     TabDashboard,
	}
}

func TestConsoleEnterRequiresGuard(t *testing.T) {
	denied := newTestConsole(newFakeFAQStore(), newFakeMessageStore(),
		fakeAuthorizer{err: errs.NewUnauthorizedError("authentication required")})
	if err := denied.Enter("token"); !errs.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if denied.Session() != nil {
		t.Error("no session should be stored after a rejected entry")
	}

	session := &models.Session{ID: uuid.New(), UserID: uuid.New()}
	granted := newTestConsole(newFakeFAQStore(), newFakeMessageStore(), fakeAuthorizer{session: session})
	if err := granted.Enter("token"); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if granted.Session() == nil || granted.Session().ID != session.ID {
		t.Error("session should be stored after entry")
	}
}

func TestConsoleLoadToleratesPartialFailure(t *testing.T) {
	faqs := newFakeFAQStore()
	faqs.listErr = errors.New("connection refused")
	messages := newFakeMessageStore(&models.ContactSubmission{Name: "Bo", Email: "bo@example.com", Message: "hey"})
	c := newTestConsole(faqs, messages, fakeAuthorizer{session: &models.Session{}})

	if err := c.Load(); err == nil {
		t.Fatal("expected Load to report the failed list")
	}

	// The failed tab renders as empty; the others still load.
	if got := len(c.Faqs.Records()); got != 0 {
		t.Errorf("failed tab should be empty, got %d", got)
	}
	if c.Faqs.LoadErr() == nil {
		t.Error("failed tab should keep its load error")
	}
	if got := len(c.Messages.Records()); got != 1 {
		t.Errorf("independent tab should have loaded, got %d", got)
	}
}

func TestConsoleDashboardCounts(t *testing.T) {
	faqs := newFakeFAQStore()
	messages := newFakeMessageStore(
		&models.ContactSubmission{Name: "A", Email: "a@example.com", Message: "1"},
		&models.ContactSubmission{Name: "B", Email: "b@example.com", Message: "2", IsRead: true},
	)
	c := newTestConsole(faqs, messages, fakeAuthorizer{session: &models.Session{}})

	c.Faqs.OpenForCreate()
	c.Faqs.Form().SetDraft(FAQDraft{Question: "Q", Answer: "A"})
	if err := c.Faqs.Form().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	c.Posts.OpenForCreate()
	c.Posts.Form().SetDraft(PostDraft{Title: "Live", Content: "x", Author: DefaultAuthor, Published: true})
	if err := c.Posts.Form().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	c.Posts.OpenForCreate()
	c.Posts.Form().SetDraft(PostDraft{Title: "Draft", Content: "y", Author: DefaultAuthor})
	if err := c.Posts.Form().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	counts := c.Dashboard()
	if counts.Posts != 2 || counts.PublishedPosts != 1 {
		t.Errorf("post counts = %d/%d, want 2/1", counts.Posts, counts.PublishedPosts)
	}
	if counts.Messages != 2 || counts.UnreadMessages != 1 {
		t.Errorf("message counts = %d/%d, want 2/1", counts.Messages, counts.UnreadMessages)
	}
	if counts.Faqs != 1 {
		t.Errorf("faq count = %d, want 1", counts.Faqs)
	}
}
