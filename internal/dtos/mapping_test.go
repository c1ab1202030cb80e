package dtos_test

import (
	"testing"
	"time"

	"apicatalogo/internal/dtos"
	"apicatalogo/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduto() *models.Produto {
	return &models.Produto{
		ProdutoID:    7,
		Nome:         "Coca-Cola",
		Descricao:    "Refrigerante de cola 350ml",
		Preco:        decimal.RequireFromString("5.45"),
		ImageURL:     "coca.png",
		Estoque:      50,
		DataCadastro: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		CategoriaID:  2,
	}
}

func TestProdutoDTO_RoundTrip(t *testing.T) {
	produto := sampleProduto()

	dto := dtos.ToProdutoDTO(produto)
	require.NotNil(t, dto)
	assert.Equal(t, produto, dtos.ToProduto(dto))
}

func TestCategoriaDTO_RoundTrip(t *testing.T) {
	categoria := &models.Categoria{CategoriaID: 3, Nome: "Bebidas", ImageURL: "bebidas.png"}

	dto := dtos.ToCategoriaDTO(categoria)
	require.NotNil(t, dto)
	assert.Equal(t, categoria, dtos.ToCategoria(dto))
}

func TestMapping_NilTolerance(t *testing.T) {
	assert.Nil(t, dtos.ToProdutoDTO(nil))
	assert.Nil(t, dtos.ToProduto(nil))
	assert.Nil(t, dtos.ToCategoriaDTO(nil))
	assert.Nil(t, dtos.ToCategoria(nil))
	assert.Nil(t, dtos.ToProdutoUpdateRequest(nil))
	assert.Nil(t, dtos.ToProdutoUpdateResponse(nil))

	assert.NotPanics(t, func() {
		dtos.ApplyProdutoDTO(nil, &models.Produto{})
		dtos.ApplyCategoriaDTO(&dtos.CategoriaDTO{}, nil)
		dtos.ApplyProdutoUpdateRequest(nil, nil)
	})
}

func TestMapping_EmptyListsAreNotNil(t *testing.T) {
	produtos := dtos.ToProdutoDTOList(nil)
	categorias := dtos.ToCategoriaDTOList([]models.Categoria{})

	assert.NotNil(t, produtos)
	assert.Empty(t, produtos)
	assert.NotNil(t, categorias)
	assert.Empty(t, categorias)
}

func TestToProdutoDTOList_KeepsOrder(t *testing.T) {
	first := sampleProduto()
	second := sampleProduto()
	second.ProdutoID = 8
	second.Nome = "Guaraná"

	list := dtos.ToProdutoDTOList([]models.Produto{*first, *second})
	require.Len(t, list, 2)
	assert.Equal(t, uint(7), list[0].ProdutoID)
	assert.Equal(t, "Guaraná", list[1].Nome)
}

func TestApplyProdutoDTO_KeepsIdentityAndDataCadastro(t *testing.T) {
	produto := sampleProduto()
	categoria := &models.Categoria{CategoriaID: 2}
	produto.Categoria = categoria
	registered := produto.DataCadastro

	dtos.ApplyProdutoDTO(&dtos.ProdutoDTO{
		ProdutoID:    99,
		Nome:         "Pepsi Cola",
		Descricao:    "Refrigerante",
		Preco:        decimal.NewFromInt(6),
		ImageURL:     "pepsi.png",
		Estoque:      10,
		DataCadastro: time.Now(),
		CategoriaID:  4,
	}, produto)

	assert.Equal(t, uint(7), produto.ProdutoID)
	assert.Equal(t, registered, produto.DataCadastro)
	assert.Same(t, categoria, produto.Categoria)
	assert.Equal(t, "Pepsi Cola", produto.Nome)
	assert.True(t, decimal.NewFromInt(6).Equal(produto.Preco))
	assert.Equal(t, uint(4), produto.CategoriaID)
}

func TestApplyCategoriaDTO_KeepsIdentity(t *testing.T) {
	categoria := &models.Categoria{CategoriaID: 3, Nome: "Bebidas", ImageURL: "bebidas.png"}

	dtos.ApplyCategoriaDTO(&dtos.CategoriaDTO{CategoriaID: 10, Nome: "Lanches", ImageURL: "lanches.png"}, categoria)

	assert.Equal(t, uint(3), categoria.CategoriaID)
	assert.Equal(t, "Lanches", categoria.Nome)
	assert.Equal(t, "lanches.png", categoria.ImageURL)
}

func TestProdutoUpdateRequest_MergeBack(t *testing.T) {
	produto := sampleProduto()

	req := dtos.ToProdutoUpdateRequest(produto)
	require.NotNil(t, req)
	req.Estoque = 3
	req.Nome = "Coca-Cola Zero"
	dtos.ApplyProdutoUpdateRequest(req, produto)

	resp := dtos.ToProdutoUpdateResponse(produto)
	assert.Equal(t, uint(7), resp.ProdutoID)
	assert.Equal(t, float32(3), resp.Estoque)
	assert.Equal(t, "Coca-Cola Zero", resp.Nome)
	assert.Equal(t, produto.DataCadastro, resp.DataCadastro)
}
