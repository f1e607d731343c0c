package console

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/stride-footwear/site-backend/models"
)

// The remaining in-memory stores, one per entity kind the console drives.
// They mirror fakeFAQStore; only the field application differs.

type fakePostStore struct {
	mu      sync.Mutex
	order   []uuid.UUID
	records map[uuid.UUID]*models.BlogPost
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{records: make(map[uuid.UUID]*models.BlogPost)}
}

func (f *fakePostStore) FindAll() ([]*models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.BlogPost, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.records[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakePostStore) Add(post *models.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	post.ID = uuid.New()
	copied := *post
	f.records[post.ID] = &copied
	f.order = append(f.order, post.ID)
	return nil
}

func (f *fakePostStore) UpdateFields(id uuid.UUID, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.records[id]
	if !ok {
		return errors.New("not found")
	}
	if v, ok := fields["title"].(string); ok {
		post.Title = v
	}
	if v, ok := fields["slug"].(string); ok {
		post.Slug = v
	}
	if v, ok := fields["excerpt"].(*string); ok {
		post.Excerpt = v
	}
	if v, ok := fields["content"].(string); ok {
		post.Content = v
	}
	if v, ok := fields["author"].(string); ok {
		post.Author = v
	}
	if v, ok := fields["published"].(bool); ok {
		post.Published = v
	}
	if v, ok := fields["image_url"].(*string); ok {
		post.ImageURL = v
	}
	return nil
}

func (f *fakePostStore) Delete(id uuid.UUID) error {
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

type fakeCategoryStore struct {
	mu      sync.Mutex
	order   []uuid.UUID
	records map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{records: make(map[uuid.UUID]*models.Category)}
}

func (f *fakeCategoryStore) FindAll() ([]*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Category, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.records[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCategoryStore) Add(category *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	category.ID = uuid.New()
	copied := *category
	f.records[category.ID] = &copied
	f.order = append(f.order, category.ID)
	return nil
}

func (f *fakeCategoryStore) UpdateFields(id uuid.UUID, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return errors.New("not found")
	}
	return nil
}

func (f *fakeCategoryStore) Delete(id uuid.UUID) error {
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

type fakeProductStore struct {
	mu      sync.Mutex
	order   []uuid.UUID
	records map[uuid.UUID]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{records: make(map[uuid.UUID]*models.Product)}
}

func (f *fakeProductStore) FindAll() ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Product, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.records[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeProductStore) Add(product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	product.ID = uuid.New()
	copied := *product
	f.records[product.ID] = &copied
	f.order = append(f.order, product.ID)
	return nil
}

func (f *fakeProductStore) UpdateFields(id uuid.UUID, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return errors.New("not found")
	}
	return nil
}

func (f *fakeProductStore) Delete(id uuid.UUID) error {
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

type fakeModelStore struct {
	mu      sync.Mutex
	order   []uuid.UUID
	records map[uuid.UUID]*models.Model
}

func newFakeModelStore() *fakeModelStore {
	return &fakeModelStore{records: make(map[uuid.UUID]*models.Model)}
}

func (f *fakeModelStore) FindAll() ([]*models.Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Model, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.records[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeModelStore) Add(model *models.Model) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	model.ID = uuid.New()
	copied := *model
	f.records[model.ID] = &copied
	f.order = append(f.order, model.ID)
	return nil
}

func (f *fakeModelStore) UpdateFields(id uuid.UUID, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return errors.New("not found")
	}
	return nil
}

func (f *fakeModelStore) Delete(id uuid.UUID) error {
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
