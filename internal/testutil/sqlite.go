// Package testutil holds helpers shared by the store backed tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"apicatalogo/internal/database"
	"apicatalogo/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a private in-memory SQLite database with foreign keys
// enforced and the catalog tables migrated. It is closed when t finishes.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := database.Open("sqlite", dsn, "silent")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive and avoids shared cache locking.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// SeedCategoria inserts a categoria directly, bypassing any unit of work.
func SeedCategoria(t *testing.T, db *gorm.DB, nome string) *models.Categoria {
	t.Helper()
	categoria := &models.Categoria{Nome: nome, ImageURL: strings.ToLower(nome) + ".png"}
	require.NoError(t, db.Create(categoria).Error)
	return categoria
}

// SeedProduto inserts a valid produto in categoriaID directly.
func SeedProduto(t *testing.T, db *gorm.DB, nome string, categoriaID uint) *models.Produto {
	t.Helper()
	produto := &models.Produto{
		Nome:        nome,
		Descricao:   "Produto de teste",
		Preco:       decimal.NewFromFloat(10.5),
		ImageURL:    "produto.png",
		Estoque:     10,
		CategoriaID: categoriaID,
	}
	require.NoError(t, db.Create(produto).Error)
	return produto
}
