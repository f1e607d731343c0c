package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// entityRepo implements the list/create/update/delete cycle every admin tab
// performs, parameterized by collection type and default ordering. The view
// is always rebuilt by re-listing after a mutation; nothing is reconciled in
// place, trading efficiency for simplicity.
type entityRepo[T any] struct {
	db    *gorm.DB
	order string
}

func newEntityRepo[T any](db *gorm.DB, order string) entityRepo[T] {
	return entityRepo[T]{db: db, order: order}
}

// GetDB returns the underlying database connection for debugging purposes
func (r entityRepo[T]) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns every record in the collection in the default order.
func (r entityRepo[T]) FindAll() ([]*T, error) {
	var records []*T
	err := r.db.Order(r.order).Find(&records).Error
	return records, err
}

// FindByID returns a single record, or nil when no row matches.
func (r entityRepo[T]) FindByID(id uuid.UUID) (*T, error) {
	var record T
	result := r.db.Limit(1).Find(&record, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &record, nil
}

// Add inserts a new record; the database assigns the id.
func (r entityRepo[T]) Add(record *T) error {
	return r.db.Create(record).Error
}

// UpdateFields applies a partial update: columns absent from fields are left
// unmodified server-side.
func (r entityRepo[T]) UpdateFields(id uuid.UUID, fields map[string]any) error {
	var record T
	result := r.db.Model(&record).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record by id.
func (r entityRepo[T]) Delete(id uuid.UUID) error {
	var record T
	return r.db.Delete(&record, "id = ?", id).Error
}
