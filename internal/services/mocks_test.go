package services_test

import (
	"context"

	"apicatalogo/internal/models"
	"apicatalogo/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock implementation of repositories.UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) ProdutoRepository() repositories.ProdutoRepository {
	args := m.Called()
	return args.Get(0).(repositories.ProdutoRepository)
}

func (m *MockUnitOfWork) CategoriaRepository() repositories.CategoriaRepository {
	args := m.Called()
	return args.Get(0).(repositories.CategoriaRepository)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() {
	m.Called()
}

func (m *MockUnitOfWork) Pending() int {
	args := m.Called()
	return args.Int(0)
}

// MockProdutoRepository is a mock implementation of repositories.ProdutoRepository
type MockProdutoRepository struct {
	mock.Mock
}

func (m *MockProdutoRepository) GetAll(ctx context.Context) ([]models.Produto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Produto), args.Error(1)
}

func (m *MockProdutoRepository) Get(ctx context.Context, query any, queryArgs ...any) (*models.Produto, error) {
	args := m.Called(ctx, query, queryArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Produto), args.Error(1)
}

func (m *MockProdutoRepository) GetByID(ctx context.Context, id uint) (*models.Produto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Produto), args.Error(1)
}

func (m *MockProdutoRepository) GetProdutosCategoria(ctx context.Context, categoriaID uint) ([]models.Produto, error) {
	args := m.Called(ctx, categoriaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Produto), args.Error(1)
}

func (m *MockProdutoRepository) Create(entity *models.Produto) *models.Produto {
	m.Called(entity)
	return entity
}

func (m *MockProdutoRepository) Update(entity *models.Produto) *models.Produto {
	m.Called(entity)
	return entity
}

func (m *MockProdutoRepository) Delete(entity *models.Produto) *models.Produto {
	m.Called(entity)
	return entity
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}
