package services

import (
	"context"
	"fmt"

	"apicatalogo/internal/dtos"
	"apicatalogo/internal/repositories"

	"go.uber.org/zap"
)

// CategoriaService handles business logic related to categorias.
type CategoriaService struct {
	newUnitOfWork repositories.UnitOfWorkFactory
	events        eventNotifier
	log           *zap.Logger
}

// NewCategoriaService creates a new CategoriaService. publisher may be nil.
func NewCategoriaService(newUnitOfWork repositories.UnitOfWorkFactory, publisher EventPublisher, log *zap.Logger) *CategoriaService {
	return &CategoriaService{
		newUnitOfWork: newUnitOfWork,
		events:        eventNotifier{publisher: publisher, log: log},
		log:           log,
	}
}

// List retrieves all categorias.
func (s *CategoriaService) List(ctx context.Context) ([]dtos.CategoriaDTO, error) {
	categorias, err := s.newUnitOfWork().CategoriaRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.ToCategoriaDTOList(categorias), nil
}

// Get retrieves a single categoria by its ID.
func (s *CategoriaService) Get(ctx context.Context, id uint) (*dtos.CategoriaDTO, error) {
	categoria, err := s.newUnitOfWork().CategoriaRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dtos.ToCategoriaDTO(categoria), nil
}

// Create stores a new categoria and returns it with its generated ID.
func (s *CategoriaService) Create(ctx context.Context, dto *dtos.CategoriaDTO) (*dtos.CategoriaDTO, error) {
	categoria := dtos.ToCategoria(dto)
	if categoria == nil {
		return nil, ErrInvalidData
	}
	categoria.CategoriaID = 0

	uow := s.newUnitOfWork()
	criada := uow.CategoriaRepository().Create(categoria)
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	out := dtos.ToCategoriaDTO(criada)
	s.log.Info("categoria criada", zap.Uint("categoria_id", out.CategoriaID))
	s.events.notify(CategoriaCriada, entityCategoria, out.CategoriaID, out)
	return out, nil
}

// Update replaces the writable fields of categoria id with dto.
func (s *CategoriaService) Update(ctx context.Context, id uint, dto *dtos.CategoriaDTO) (*dtos.CategoriaDTO, error) {
	if dto == nil {
		return nil, ErrInvalidData
	}
	if dto.CategoriaID != id {
		return nil, fmt.Errorf("categoria %d: %w", id, ErrIDMismatch)
	}

	uow := s.newUnitOfWork()
	repo := uow.CategoriaRepository()
	categoria, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dtos.ApplyCategoriaDTO(dto, categoria)
	atualizada := repo.Update(categoria)
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	out := dtos.ToCategoriaDTO(atualizada)
	s.events.notify(CategoriaAtualizada, entityCategoria, out.CategoriaID, out)
	return out, nil
}

// Delete removes categoria id, and with it its produtos, returning what was removed.
func (s *CategoriaService) Delete(ctx context.Context, id uint) (*dtos.CategoriaDTO, error) {
	uow := s.newUnitOfWork()
	repo := uow.CategoriaRepository()
	categoria, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	excluida := repo.Delete(categoria)
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	out := dtos.ToCategoriaDTO(excluida)
	s.log.Info("categoria excluída", zap.Uint("categoria_id", out.CategoriaID))
	s.events.notify(CategoriaExcluida, entityCategoria, out.CategoriaID, out)
	return out, nil
}
