package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto represents a product in the catalog.
type Produto struct {
	ProdutoID    uint            `json:"produtoId" gorm:"primaryKey"`
	Nome         string          `json:"nome" gorm:"type:varchar(80);not null"`
	Descricao    string          `json:"descricao" gorm:"type:varchar(300);not null"`
	Preco        decimal.Decimal `json:"preco" gorm:"type:decimal(10,2);not null"`
	ImageURL     string          `json:"imageUrl" gorm:"column:image_url;type:varchar(300);not null"`
	Estoque      float32         `json:"estoque"`
	DataCadastro time.Time       `json:"dataCadastro"`
	CategoriaID  uint            `json:"categoriaId" gorm:"index;not null"`
	Categoria    *Categoria      `json:"-"`
}

func (Produto) TableName() string { return "Produtos" }
