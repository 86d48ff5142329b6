package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Repository provides the shared CRUD contract for a model type so the
// specialized repositories do not reimplement persistence mechanics.
// Predicates are handed to the storage engine, never evaluated in memory.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a repository bound to a database handle
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB returns the underlying database handle
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// Create inserts a new entity and returns it with identity populated
func (r *Repository[T]) Create(entity T) (T, error) {
	result := r.db.Create(&entity)
	return entity, result.Error
}

// FindAll retrieves every row. It returns an empty slice, never nil, when
// the table is empty.
func (r *Repository[T]) FindAll() ([]T, error) {
	entities := make([]T, 0)
	result := r.db.Find(&entities)
	return entities, result.Error
}

// FindWhere retrieves all rows matching the given condition
func (r *Repository[T]) FindWhere(query interface{}, args ...interface{}) ([]T, error) {
	entities := make([]T, 0)
	result := r.db.Where(query, args...).Find(&entities)
	return entities, result.Error
}

// FindOne retrieves the first row matching the given condition. A missing
// row is reported through the boolean, not as an error.
func (r *Repository[T]) FindOne(query interface{}, args ...interface{}) (T, bool, error) {
	var entity T
	result := r.db.Where(query, args...).First(&entity)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return entity, false, nil
	}
	if result.Error != nil {
		return entity, false, result.Error
	}
	return entity, true, nil
}

// Save persists mutations already applied to a previously fetched entity
func (r *Repository[T]) Save(entity T) (T, error) {
	result := r.db.Save(&entity)
	return entity, result.Error
}

// Delete removes the entity's row, reporting whether a row was removed
func (r *Repository[T]) Delete(entity T) (bool, error) {
	result := r.db.Delete(&entity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Transaction runs fn inside a single database transaction
func (r *Repository[T]) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
