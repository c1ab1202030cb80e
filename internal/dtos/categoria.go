package dtos

import "apicatalogo/internal/models"

// CategoriaDTO is the wire shape of a categoria.
type CategoriaDTO struct {
	CategoriaID uint   `json:"categoriaId"`
	Nome        string `json:"nome" validate:"required,max=80"`
	ImageURL    string `json:"imageUrl" validate:"required,max=300"`
}

func ToCategoriaDTO(categoria *models.Categoria) *CategoriaDTO {
	if categoria == nil {
		return nil
	}
	return &CategoriaDTO{
		CategoriaID: categoria.CategoriaID,
		Nome:        categoria.Nome,
		ImageURL:    categoria.ImageURL,
	}
}

func ToCategoria(dto *CategoriaDTO) *models.Categoria {
	if dto == nil {
		return nil
	}
	return &models.Categoria{
		CategoriaID: dto.CategoriaID,
		Nome:        dto.Nome,
		ImageURL:    dto.ImageURL,
	}
}

// ApplyCategoriaDTO copies the writable fields of dto onto categoria.
func ApplyCategoriaDTO(dto *CategoriaDTO, categoria *models.Categoria) {
	if dto == nil || categoria == nil {
		return
	}
	categoria.Nome = dto.Nome
	categoria.ImageURL = dto.ImageURL
}

// ToCategoriaDTOList never returns nil so empty lists encode as [].
func ToCategoriaDTOList(categorias []models.Categoria) []CategoriaDTO {
	out := make([]CategoriaDTO, 0, len(categorias))
	for i := range categorias {
		out = append(out, *ToCategoriaDTO(&categorias[i]))
	}
	return out
}
