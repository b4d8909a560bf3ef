package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yildirimsamet/simplestorage/internal/apperrors"
	"github.com/yildirimsamet/simplestorage/internal/models"
	"github.com/yildirimsamet/simplestorage/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Search(term string) ([]models.Product, error) {
	args := m.Called(term)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(id uint, name, image, description *string, categoryID *uint) (*models.Product, error) {
	args := m.Called(id, name, image, description, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) AddSize(productID uint, variant *models.ProductSize) (*models.Product, error) {
	args := m.Called(productID, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateSize(productID, sizeID uint, price *float64, stock *int) (*models.Product, error) {
	args := m.Called(productID, sizeID, price, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteSize(productID, sizeID uint) (*models.Product, error) {
	args := m.Called(productID, sizeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

// MockSearchCache is a mock implementation of services.SearchCache
type MockSearchCache struct {
	mock.Mock
}

func (m *MockSearchCache) GetSearch(term string) ([]models.Product, bool, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Bool(1), args.Error(2)
}

func (m *MockSearchCache) PutSearch(term string, products []models.Product) error {
	args := m.Called(term, products)
	return args.Error(0)
}

func (m *MockSearchCache) InvalidateSearch() error {
	args := m.Called()
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Laptop", CategoryID: 1},
		{ID: 2, Name: "Monitor", CategoryID: 1},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)

	expectedProduct := &models.Product{ID: 1, Name: "Laptop", CategoryID: 1}

	// Test successful retrieval
	mockRepo.On("GetByID", uint(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	// Test product not found
	mockRepo.On("GetByID", uint(99)).Return(nil, apperrors.NotFound("product")).Once()
	product, err = service.GetProductByID(99)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestProductService_SearchCacheMiss(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	service := services.NewProductService(mockRepo, mockCache, nil)

	found := []models.Product{{ID: 1, Name: "Headphone", CategoryID: 1}}

	// A miss falls through to the store and fills the cache.
	mockCache.On("GetSearch", "headphone").Return(nil, false, nil).Once()
	mockRepo.On("Search", "headphone").Return(found, nil).Once()
	mockCache.On("PutSearch", "headphone", found).Return(nil).Once()

	products, err := service.SearchProducts("headphone")
	assert.NoError(t, err)
	assert.Equal(t, found, products)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestProductService_SearchCacheHit(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	service := services.NewProductService(mockRepo, mockCache, nil)

	cached := []models.Product{{ID: 1, Name: "Headphone", CategoryID: 1}}

	// A hit never touches the store.
	mockCache.On("GetSearch", "headphone").Return(cached, true, nil).Once()

	products, err := service.SearchProducts("headphone")
	assert.NoError(t, err)
	assert.Equal(t, cached, products)
	mockRepo.AssertNotCalled(t, "Search", mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestProductService_SearchNormalizesTerm(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	service := services.NewProductService(mockRepo, mockCache, nil)

	mockCache.On("GetSearch", "headphone").Return(nil, false, nil).Once()
	mockRepo.On("Search", "headphone").Return([]models.Product{}, nil).Once()
	mockCache.On("PutSearch", "headphone", []models.Product{}).Return(nil).Once()

	_, err := service.SearchProducts("  HeadPhone ")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestProductService_SearchCacheFaultFallsBackToStore(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	service := services.NewProductService(mockRepo, mockCache, nil)

	found := []models.Product{{ID: 2, Name: "Monitor", CategoryID: 1}}

	mockCache.On("GetSearch", "monitor").Return(nil, false, fmt.Errorf("redis: connection refused")).Once()
	mockRepo.On("Search", "monitor").Return(found, nil).Once()
	mockCache.On("PutSearch", "monitor", found).Return(fmt.Errorf("redis: connection refused")).Once()

	products, err := service.SearchProducts("monitor")
	assert.NoError(t, err)
	assert.Equal(t, found, products)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestProductService_SearchWithoutCache(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)

	mockRepo.On("Search", "laptop").Return([]models.Product{}, nil).Once()

	products, err := service.SearchProducts("laptop")
	assert.NoError(t, err)
	assert.Empty(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductInvalidatesAndPublishes(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	mockMQ := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockCache, mockMQ)

	newProduct := &models.Product{Name: "Keyboard", CategoryID: 1}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	mockCache.On("InvalidateSearch").Return(nil).Once()
	mockMQ.On("Publish", "product.created", mock.Anything).Return(nil).Once()

	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestProductService_CreateProductFailureSkipsSideEffects(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	mockMQ := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockCache, mockMQ)

	newProduct := &models.Product{Name: "Keyboard", CategoryID: 99}

	mockRepo.On("Create", newProduct).Return(apperrors.Conflict("record is being used by other data")).Once()

	err := service.CreateProduct(newProduct)
	assert.Error(t, err)
	mockCache.AssertNotCalled(t, "InvalidateSearch")
	mockMQ.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	service := services.NewProductService(mockRepo, mockCache, nil)

	name := "Laptop Pro"
	updated := &models.Product{ID: 1, Name: name, CategoryID: 1}

	mockRepo.On("Update", uint(1), &name, (*string)(nil), (*string)(nil), (*uint)(nil)).Return(updated, nil).Once()
	mockCache.On("InvalidateSearch").Return(nil).Once()

	product, err := service.UpdateProduct(1, &name, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, updated, product)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	mockMQ := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockCache, mockMQ)

	deleted := &models.Product{ID: 1, Name: "Laptop", CategoryID: 1}

	mockRepo.On("Delete", uint(1)).Return(deleted, nil).Once()
	mockCache.On("InvalidateSearch").Return(nil).Once()
	mockMQ.On("Publish", "product.deleted", mock.Anything).Return(nil).Once()

	product, err := service.DeleteProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, deleted, product)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestProductService_AddSizeToProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	service := services.NewProductService(mockRepo, mockCache, nil)

	refreshed := &models.Product{
		ID:         1,
		Name:       "Shirt",
		CategoryID: 2,
		Sizes:      []models.ProductSize{{SizeID: 3, SizeName: "M", Price: 19.99, Stock: 10}},
	}

	mockRepo.On("AddSize", uint(1), &models.ProductSize{SizeID: 3, Price: 19.99, Stock: 10}).Return(refreshed, nil).Once()
	mockCache.On("InvalidateSearch").Return(nil).Once()

	product, err := service.AddSizeToProduct(1, 3, 19.99, 10)
	assert.NoError(t, err)
	assert.Len(t, product.Sizes, 1)
	assert.Equal(t, "M", product.Sizes[0].SizeName)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestProductService_UpdateProductSizePartialPatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)

	stock := 5
	refreshed := &models.Product{ID: 1, Name: "Shirt", CategoryID: 2}

	// Only stock is patched; price stays nil through to the repository.
	mockRepo.On("UpdateSize", uint(1), uint(3), (*float64)(nil), &stock).Return(refreshed, nil).Once()

	product, err := service.UpdateProductSize(1, 3, nil, &stock)
	assert.NoError(t, err)
	assert.Equal(t, refreshed, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteSizeFromProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	service := services.NewProductService(mockRepo, mockCache, nil)

	mockRepo.On("DeleteSize", uint(1), uint(3)).Return(nil, apperrors.NotFound("product size")).Once()

	product, err := service.DeleteSizeFromProduct(1, 3)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	mockCache.AssertNotCalled(t, "InvalidateSearch")
	mockRepo.AssertExpectations(t)
}
