package models

// Categoria groups products. Deleting a categoria removes its products.
type Categoria struct {
	CategoriaID uint      `json:"categoriaId" gorm:"primaryKey"`
	Nome        string    `json:"nome" gorm:"type:varchar(80);not null"`
	ImageURL    string    `json:"imageUrl" gorm:"column:image_url;type:varchar(300);not null"`
	Produtos    []Produto `json:"-" gorm:"foreignKey:CategoriaID;references:CategoriaID;constraint:OnDelete:CASCADE"`
}

func (Categoria) TableName() string { return "Categorias" }
