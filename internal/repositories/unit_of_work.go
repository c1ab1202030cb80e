package repositories

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// UnitOfWork groups the repositories of one request behind a single commit.
type UnitOfWork interface {
	ProdutoRepository() ProdutoRepository
	CategoriaRepository() CategoriaRepository
	// Commit persists every staged change in one transaction.
	Commit(ctx context.Context) error
	// Rollback discards every staged change.
	Rollback()
	// Pending reports how many changes are staged.
	Pending() int
}

// UnitOfWorkFactory hands out a fresh unit of work. Units of work are
// request scoped and must not be shared between concurrent requests.
type UnitOfWorkFactory func() UnitOfWork

// NewUnitOfWorkFactory returns a factory building GORM units of work over db.
func NewUnitOfWorkFactory(db *gorm.DB) UnitOfWorkFactory {
	return func() UnitOfWork {
		return NewGORMUnitOfWork(db)
	}
}

// GORMUnitOfWork is a GORM implementation of UnitOfWork.
type GORMUnitOfWork struct {
	db      *gorm.DB
	changes *ChangeSet

	produtoRepo   ProdutoRepository
	categoriaRepo CategoriaRepository
}

// NewGORMUnitOfWork creates a unit of work with an empty change set.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{
		db:      db,
		changes: NewChangeSet(),
	}
}

func (u *GORMUnitOfWork) ProdutoRepository() ProdutoRepository {
	if u.produtoRepo == nil {
		u.produtoRepo = NewGORMProdutoRepository(u.db, u.changes)
	}
	return u.produtoRepo
}

func (u *GORMUnitOfWork) CategoriaRepository() CategoriaRepository {
	if u.categoriaRepo == nil {
		u.categoriaRepo = NewGORMCategoriaRepository(u.db, u.changes)
	}
	return u.categoriaRepo
}

func (u *GORMUnitOfWork) Pending() int {
	return u.changes.Len()
}

func (u *GORMUnitOfWork) Rollback() {
	u.changes.Clear()
}

// Commit applies the staged changes in order inside one transaction. On
// failure nothing is applied and the change set is left as it was, with the
// keys of staged inserts restored so the commit can be retried.
func (u *GORMUnitOfWork) Commit(ctx context.Context) error {
	pending := u.changes.Pending()
	if len(pending) == 0 {
		return nil
	}
	keys := u.addedKeys(ctx, pending)

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, change := range pending {
			if err := applyChange(tx, change); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		for _, key := range keys {
			key.restore(ctx)
		}
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}

	u.changes.Clear()
	return nil
}

// primaryKey is the primary key value of an entity before a commit.
type primaryKey struct {
	field  *schema.Field
	entity reflect.Value
	value  any
}

func (k primaryKey) restore(ctx context.Context) {
	// Set only fails on a type mismatch, and value came from the same field.
	_ = k.field.Set(ctx, k.entity, k.value)
}

// addedKeys records the primary key of every staged insert.
func (u *GORMUnitOfWork) addedKeys(ctx context.Context, pending []Change) []primaryKey {
	var keys []primaryKey
	for _, change := range pending {
		if change.Kind != Added {
			continue
		}
		stmt := &gorm.Statement{DB: u.db}
		if err := stmt.Parse(change.Entity); err != nil || stmt.Schema.PrioritizedPrimaryField == nil {
			continue
		}
		field := stmt.Schema.PrioritizedPrimaryField
		entity := reflect.ValueOf(change.Entity)
		value, _ := field.ValueOf(ctx, entity)
		keys = append(keys, primaryKey{field: field, entity: entity, value: value})
	}
	return keys
}

func applyChange(tx *gorm.DB, change Change) error {
	switch change.Kind {
	case Added:
		if err := tx.Omit(clause.Associations).Create(change.Entity).Error; err != nil {
			return fmt.Errorf("failed to create %T: %w", change.Entity, err)
		}
	case Modified:
		// Select("*") writes zero values too, so the row is fully replaced.
		res := tx.Model(change.Entity).Select("*").Omit(clause.Associations).Updates(change.Entity)
		if res.Error != nil {
			return fmt.Errorf("failed to update %T: %w", change.Entity, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%T not found for update: %w", change.Entity, ErrNotFound)
		}
	case Deleted:
		res := tx.Delete(change.Entity)
		if res.Error != nil {
			return fmt.Errorf("failed to delete %T: %w", change.Entity, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%T not found for deletion: %w", change.Entity, ErrNotFound)
		}
	default:
		return fmt.Errorf("unknown change kind %d", change.Kind)
	}
	return nil
}
