package repositories

import (
	"context"
	"fmt"

	"apicatalogo/internal/models"

	"gorm.io/gorm"
)

// ProdutoRepository adds produto specific queries to Repository.
type ProdutoRepository interface {
	Repository[models.Produto]
	GetProdutosCategoria(ctx context.Context, categoriaID uint) ([]models.Produto, error)
}

// GORMProdutoRepository is a GORM implementation of ProdutoRepository.
type GORMProdutoRepository struct {
	*GORMRepository[models.Produto]
}

// NewGORMProdutoRepository creates a new instance of GORMProdutoRepository.
func NewGORMProdutoRepository(db *gorm.DB, changes *ChangeSet) *GORMProdutoRepository {
	return &GORMProdutoRepository{
		GORMRepository: NewGORMRepository[models.Produto](db, changes),
	}
}

// GetProdutosCategoria retrieves the products of one categoria. An empty
// categoria yields an empty slice.
func (r *GORMProdutoRepository) GetProdutosCategoria(ctx context.Context, categoriaID uint) ([]models.Produto, error) {
	produtos := make([]models.Produto, 0)
	if err := r.db.WithContext(ctx).Where("categoria_id = ?", categoriaID).Find(&produtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get products of categoria %d: %w", categoriaID, err)
	}
	return produtos, nil
}
