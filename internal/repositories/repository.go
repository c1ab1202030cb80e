package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository defines the data access contract shared by every entity.
// Reads go to the store; Create, Update and Delete only stage a change
// that is persisted by UnitOfWork.Commit.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Get(ctx context.Context, query any, args ...any) (*T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Create(entity *T) *T
	Update(entity *T) *T
	Delete(entity *T) *T
}

// GORMRepository is the GORM implementation of Repository.
type GORMRepository[T any] struct {
	db      *gorm.DB
	changes *ChangeSet
}

// NewGORMRepository creates a repository reading from db and staging into changes.
func NewGORMRepository[T any](db *gorm.DB, changes *ChangeSet) *GORMRepository[T] {
	return &GORMRepository[T]{
		db:      db,
		changes: changes,
	}
}

// GetAll retrieves every row of T's table.
func (r *GORMRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %s: %w", entityName[T](), err)
	}
	return items, nil
}

// Get retrieves the first row matching a GORM condition, e.g. Get(ctx, "nome = ?", "Bebidas").
func (r *GORMRepository[T]) Get(ctx context.Context, query any, args ...any) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s matching %v: %w", entityName[T](), query, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", entityName[T](), err)
	}
	return &entity, nil
}

// GetByID retrieves a row by primary key.
func (r *GORMRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s with ID %d: %w", entityName[T](), id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by ID %d: %w", entityName[T](), id, err)
	}
	return &entity, nil
}

// Create stages an insert. The generated key is set on entity by Commit.
func (r *GORMRepository[T]) Create(entity *T) *T {
	r.changes.Stage(Added, entity)
	return entity
}

// Update stages a full-row replacement keyed by the entity's primary key.
func (r *GORMRepository[T]) Update(entity *T) *T {
	r.changes.Stage(Modified, entity)
	return entity
}

// Delete stages a removal and hands the entity back for echoing.
func (r *GORMRepository[T]) Delete(entity *T) *T {
	r.changes.Stage(Deleted, entity)
	return entity
}

func entityName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
