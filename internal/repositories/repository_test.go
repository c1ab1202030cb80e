package repositories_test

import (
	"context"
	"testing"

	"apicatalogo/internal/repositories"
	"apicatalogo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMRepository_GetAllEmpty(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	categorias, err := repositories.NewGORMUnitOfWork(db).CategoriaRepository().GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categorias)
	assert.Len(t, categorias, 0)
}

func TestGORMRepository_GetByPredicate(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	testutil.SeedCategoria(t, db, "Bebidas")
	lanches := testutil.SeedCategoria(t, db, "Lanches")

	repo := repositories.NewGORMUnitOfWork(db).CategoriaRepository()

	got, err := repo.Get(ctx, "nome = ?", "Lanches")
	require.NoError(t, err)
	assert.Equal(t, lanches.CategoriaID, got.CategoriaID)

	got, err = repo.Get(ctx, "nome = ?", "Inexistente")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMProdutoRepository_GetProdutosCategoria(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	bebidas := testutil.SeedCategoria(t, db, "Bebidas")
	vazia := testutil.SeedCategoria(t, db, "Sobremesas")
	lanches := testutil.SeedCategoria(t, db, "Lanches")
	testutil.SeedProduto(t, db, "Guaraná", bebidas.CategoriaID)
	testutil.SeedProduto(t, db, "Suco de uva", bebidas.CategoriaID)
	testutil.SeedProduto(t, db, "Misto quente", lanches.CategoriaID)

	repo := repositories.NewGORMUnitOfWork(db).ProdutoRepository()

	produtos, err := repo.GetProdutosCategoria(ctx, bebidas.CategoriaID)
	require.NoError(t, err)
	require.Len(t, produtos, 2)
	for _, p := range produtos {
		assert.Equal(t, bebidas.CategoriaID, p.CategoriaID)
	}

	produtos, err = repo.GetProdutosCategoria(ctx, vazia.CategoriaID)
	require.NoError(t, err)
	assert.NotNil(t, produtos)
	assert.Empty(t, produtos)
}

func TestGORMRepository_DeleteCategoriaCascadesToProdutos(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	bebidas := testutil.SeedCategoria(t, db, "Bebidas")
	testutil.SeedProduto(t, db, "Guaraná", bebidas.CategoriaID)

	uow := repositories.NewGORMUnitOfWork(db)
	uow.CategoriaRepository().Delete(bebidas)
	require.NoError(t, uow.Commit(ctx))

	produtos, err := repositories.NewGORMUnitOfWork(db).ProdutoRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, produtos)
}
