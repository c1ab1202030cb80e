package repositories

import (
	"apicatalogo/internal/models"

	"gorm.io/gorm"
)

// CategoriaRepository is the data access contract for categorias.
type CategoriaRepository interface {
	Repository[models.Categoria]
}

// GORMCategoriaRepository is a GORM implementation of CategoriaRepository.
type GORMCategoriaRepository struct {
	*GORMRepository[models.Categoria]
}

func NewGORMCategoriaRepository(db *gorm.DB, changes *ChangeSet) *GORMCategoriaRepository {
	return &GORMCategoriaRepository{
		GORMRepository: NewGORMRepository[models.Categoria](db, changes),
	}
}
