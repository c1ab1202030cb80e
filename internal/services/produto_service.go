package services

import (
	"context"
	"fmt"
	"time"

	"apicatalogo/internal/dtos"
	"apicatalogo/internal/patch"
	"apicatalogo/internal/repositories"
	"apicatalogo/internal/validation"

	"go.uber.org/zap"
)

// ProdutoService handles business logic related to produtos.
type ProdutoService struct {
	newUnitOfWork repositories.UnitOfWorkFactory
	validate      *validation.Validator
	events        eventNotifier
	log           *zap.Logger
}

// NewProdutoService creates a new ProdutoService. publisher may be nil.
func NewProdutoService(newUnitOfWork repositories.UnitOfWorkFactory, validate *validation.Validator, publisher EventPublisher, log *zap.Logger) *ProdutoService {
	return &ProdutoService{
		newUnitOfWork: newUnitOfWork,
		validate:      validate,
		events:        eventNotifier{publisher: publisher, log: log},
		log:           log,
	}
}

// List retrieves all produtos.
func (s *ProdutoService) List(ctx context.Context) ([]dtos.ProdutoDTO, error) {
	produtos, err := s.newUnitOfWork().ProdutoRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.ToProdutoDTOList(produtos), nil
}

// ListByCategoria retrieves the produtos of one categoria; none is an empty list.
func (s *ProdutoService) ListByCategoria(ctx context.Context, categoriaID uint) ([]dtos.ProdutoDTO, error) {
	produtos, err := s.newUnitOfWork().ProdutoRepository().GetProdutosCategoria(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	return dtos.ToProdutoDTOList(produtos), nil
}

// Get retrieves a single produto by its ID.
func (s *ProdutoService) Get(ctx context.Context, id uint) (*dtos.ProdutoDTO, error) {
	produto, err := s.newUnitOfWork().ProdutoRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dtos.ToProdutoDTO(produto), nil
}

// Create stores a new produto. DataCadastro defaults to now.
func (s *ProdutoService) Create(ctx context.Context, dto *dtos.ProdutoDTO) (*dtos.ProdutoDTO, error) {
	produto := dtos.ToProduto(dto)
	if produto == nil {
		return nil, ErrInvalidData
	}
	produto.ProdutoID = 0
	if produto.DataCadastro.IsZero() {
		produto.DataCadastro = time.Now().UTC()
	}

	uow := s.newUnitOfWork()
	novo := uow.ProdutoRepository().Create(produto)
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	out := dtos.ToProdutoDTO(novo)
	s.log.Info("produto criado", zap.Uint("produto_id", out.ProdutoID), zap.Uint("categoria_id", out.CategoriaID))
	s.events.notify(ProdutoCriado, entityProduto, out.ProdutoID, out)
	return out, nil
}

// Update replaces the writable fields of produto id with dto.
func (s *ProdutoService) Update(ctx context.Context, id uint, dto *dtos.ProdutoDTO) (*dtos.ProdutoDTO, error) {
	if dto == nil {
		return nil, ErrInvalidData
	}
	if dto.ProdutoID != id {
		return nil, fmt.Errorf("produto %d: %w", id, ErrIDMismatch)
	}

	uow := s.newUnitOfWork()
	repo := uow.ProdutoRepository()
	produto, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dtos.ApplyProdutoDTO(dto, produto)
	atualizado := repo.Update(produto)
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	out := dtos.ToProdutoDTO(atualizado)
	s.events.notify(ProdutoAtualizado, entityProduto, out.ProdutoID, out)
	return out, nil
}

// Patch applies doc to produto id. The patched values are validated as a
// whole and nothing is staged unless every field is valid.
func (s *ProdutoService) Patch(ctx context.Context, id int, doc patch.Document) (*dtos.ProdutoDTOUpdateResponse, error) {
	if len(doc) == 0 || id <= 0 {
		return nil, ErrInvalidData
	}

	uow := s.newUnitOfWork()
	repo := uow.ProdutoRepository()
	produto, err := repo.GetByID(ctx, uint(id))
	if err != nil {
		return nil, err
	}

	req := dtos.ToProdutoUpdateRequest(produto)
	if err := doc.ApplyTo(req); err != nil {
		return nil, fmt.Errorf("failed to patch produto %d: %w", id, err)
	}
	if err := s.validate.Struct(req); err != nil {
		s.log.Warn("patched produto failed validation", zap.Int("produto_id", id), zap.Error(err))
		return nil, err
	}

	dtos.ApplyProdutoUpdateRequest(req, produto)
	repo.Update(produto)
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	out := dtos.ToProdutoUpdateResponse(produto)
	s.events.notify(ProdutoAtualizado, entityProduto, out.ProdutoID, out)
	return out, nil
}

// Delete removes produto id and returns what was removed.
func (s *ProdutoService) Delete(ctx context.Context, id uint) (*dtos.ProdutoDTO, error) {
	uow := s.newUnitOfWork()
	repo := uow.ProdutoRepository()
	produto, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	excluido := repo.Delete(produto)
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	out := dtos.ToProdutoDTO(excluido)
	s.log.Info("produto excluído", zap.Uint("produto_id", out.ProdutoID))
	s.events.notify(ProdutoExcluido, entityProduto, out.ProdutoID, out)
	return out, nil
}
