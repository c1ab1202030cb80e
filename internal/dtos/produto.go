package dtos

import (
	"time"

	"apicatalogo/internal/models"

	"github.com/shopspring/decimal"
)

// ProdutoDTO is the wire shape of a produto for list, get, create and replace.
// DataCadastro is assigned by the server on create and kept on replace.
type ProdutoDTO struct {
	ProdutoID    uint            `json:"produtoId"`
	Nome         string          `json:"nome" validate:"required,min=5,max=80,primeiramaiuscula"`
	Descricao    string          `json:"descricao" validate:"required,max=300"`
	Preco        decimal.Decimal `json:"preco" validate:"required,gte=1,lte=10000"`
	ImageURL     string          `json:"imageUrl" validate:"required,max=300"`
	Estoque      float32         `json:"estoque" validate:"gt=0"`
	DataCadastro time.Time       `json:"dataCadastro"`
	CategoriaID  uint            `json:"categoriaId"`
}

// ProdutoDTOUpdateRequest is the working copy a patch document is applied to.
type ProdutoDTOUpdateRequest struct {
	Nome         string          `json:"nome" validate:"required,min=5,max=80,primeiramaiuscula"`
	Descricao    string          `json:"descricao" validate:"required,max=300"`
	Preco        decimal.Decimal `json:"preco" validate:"required,gte=1,lte=10000"`
	ImageURL     string          `json:"imageUrl" validate:"required,max=300"`
	Estoque      float32         `json:"estoque" validate:"gt=0"`
	DataCadastro time.Time       `json:"dataCadastro"`
	CategoriaID  uint            `json:"categoriaId"`
}

// ProdutoDTOUpdateResponse is returned after a partial update.
type ProdutoDTOUpdateResponse struct {
	ProdutoID    uint            `json:"produtoId"`
	Nome         string          `json:"nome"`
	Descricao    string          `json:"descricao"`
	Preco        decimal.Decimal `json:"preco"`
	ImageURL     string          `json:"imageUrl"`
	Estoque      float32         `json:"estoque"`
	DataCadastro time.Time       `json:"dataCadastro"`
	CategoriaID  uint            `json:"categoriaId"`
}

func ToProdutoDTO(produto *models.Produto) *ProdutoDTO {
	if produto == nil {
		return nil
	}
	return &ProdutoDTO{
		ProdutoID:    produto.ProdutoID,
		Nome:         produto.Nome,
		Descricao:    produto.Descricao,
		Preco:        produto.Preco,
		ImageURL:     produto.ImageURL,
		Estoque:      produto.Estoque,
		DataCadastro: produto.DataCadastro,
		CategoriaID:  produto.CategoriaID,
	}
}

func ToProduto(dto *ProdutoDTO) *models.Produto {
	if dto == nil {
		return nil
	}
	return &models.Produto{
		ProdutoID:    dto.ProdutoID,
		Nome:         dto.Nome,
		Descricao:    dto.Descricao,
		Preco:        dto.Preco,
		ImageURL:     dto.ImageURL,
		Estoque:      dto.Estoque,
		DataCadastro: dto.DataCadastro,
		CategoriaID:  dto.CategoriaID,
	}
}

// ApplyProdutoDTO copies the request-writable fields of dto onto produto.
// Identity, DataCadastro and the Categoria link are left untouched.
func ApplyProdutoDTO(dto *ProdutoDTO, produto *models.Produto) {
	if dto == nil || produto == nil {
		return
	}
	produto.Nome = dto.Nome
	produto.Descricao = dto.Descricao
	produto.Preco = dto.Preco
	produto.ImageURL = dto.ImageURL
	produto.Estoque = dto.Estoque
	produto.CategoriaID = dto.CategoriaID
}

func ToProdutoDTOList(produtos []models.Produto) []ProdutoDTO {
	out := make([]ProdutoDTO, 0, len(produtos))
	for i := range produtos {
		out = append(out, *ToProdutoDTO(&produtos[i]))
	}
	return out
}

func ToProdutoUpdateRequest(produto *models.Produto) *ProdutoDTOUpdateRequest {
	if produto == nil {
		return nil
	}
	return &ProdutoDTOUpdateRequest{
		Nome:         produto.Nome,
		Descricao:    produto.Descricao,
		Preco:        produto.Preco,
		ImageURL:     produto.ImageURL,
		Estoque:      produto.Estoque,
		DataCadastro: produto.DataCadastro,
		CategoriaID:  produto.CategoriaID,
	}
}

// ApplyProdutoUpdateRequest merges a patched working copy back onto produto.
func ApplyProdutoUpdateRequest(req *ProdutoDTOUpdateRequest, produto *models.Produto) {
	if req == nil || produto == nil {
		return
	}
	produto.Nome = req.Nome
	produto.Descricao = req.Descricao
	produto.Preco = req.Preco
	produto.ImageURL = req.ImageURL
	produto.Estoque = req.Estoque
	produto.DataCadastro = req.DataCadastro
	produto.CategoriaID = req.CategoriaID
}

func ToProdutoUpdateResponse(produto *models.Produto) *ProdutoDTOUpdateResponse {
	if produto == nil {
		return nil
	}
	return &ProdutoDTOUpdateResponse{
		ProdutoID:    produto.ProdutoID,
		Nome:         produto.Nome,
		Descricao:    produto.Descricao,
		Preco:        produto.Preco,
		ImageURL:     produto.ImageURL,
		Estoque:      produto.Estoque,
		DataCadastro: produto.DataCadastro,
		CategoriaID:  produto.CategoriaID,
	}
}
