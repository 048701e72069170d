package catalog

import (
	"context"
	"shop-backoffice/src/infrastructure/log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProductRepository struct {
	products map[string]Product
	addCalls int
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: map[string]Product{}}
}

func (f *fakeProductRepository) GetProductByID(_ context.Context, productID string) (*Product, error) {
	product, ok := f.products[productID]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (f *fakeProductRepository) GetAllProducts(_ context.Context) ([]Product, error) {
	var all []Product
	for _, product := range f.products {
		all = append(all, product)
	}
	return all, nil
}

func (f *fakeProductRepository) GetLowStockProducts(_ context.Context, threshold int) ([]Product, error) {
	var low []Product
	for _, product := range f.products {
		if product.Stock < threshold {
			low = append(low, product)
		}
	}
	return low, nil
}

func (f *fakeProductRepository) AddProduct(_ context.Context, product Product) error {
	f.addCalls++
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepository) UpdateProduct(_ context.Context, product Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepository) DeleteProduct(_ context.Context, productID string) error {
	if _, ok := f.products[productID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.products, productID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string)                          {}
func (nopLogger) Warn(context.Context, string)                          {}
func (nopLogger) Exception(context.Context, string, error)              {}
func (nopLogger) Fatal(context.Context, string, error)                  {}
func (nopLogger) InfoWithExtra(context.Context, string, map[string]any) {}
func (nopLogger) RequestResponse(context.Context, *log.Field)           {}
func (nopLogger) WithCorrelationID(ctx context.Context, _ string) context.Context {
	return ctx
}

func validProduct() Product {
	return Product{Name: "Gaming Laptop", SKU: "LAP-001", Price: 85000, Stock: 12, Category: "Electronics"}
}

func TestAddProduct_AssignsID(t *testing.T) {
	repo := newFakeProductRepository()
	service := NewCatalogService(nopLogger{}, repo)

	created, err := service.AddProduct(context.Background(), validProduct())

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, repo.addCalls)

	stored, err := service.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Gaming Laptop", stored.Name)
}

func TestAddProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Product)
	}{
		{"blank name", func(p *Product) { p.Name = "  " }},
		{"blank sku", func(p *Product) { p.SKU = "" }},
		{"negative price", func(p *Product) { p.Price = -1 }},
		{"negative stock", func(p *Product) { p.Stock = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeProductRepository()
			service := NewCatalogService(nopLogger{}, repo)

			product := validProduct()
			tt.mutate(&product)

			_, err := service.AddProduct(context.Background(), product)

			assert.ErrorIs(t, err, ErrInvalidProduct)
			assert.Equal(t, 0, repo.addCalls)
		})
	}
}

func TestAddProduct_ZeroPriceAndStockAllowed(t *testing.T) {
	service := NewCatalogService(nopLogger{}, newFakeProductRepository())

	product := validProduct()
	product.Price = 0
	product.Stock = 0

	_, err := service.AddProduct(context.Background(), product)
	assert.NoError(t, err)
}

func TestUpdateProduct(t *testing.T) {
	repo := newFakeProductRepository()
	service := NewCatalogService(nopLogger{}, repo)

	created, err := service.AddProduct(context.Background(), validProduct())
	require.NoError(t, err)

	created.Price = 79000
	require.NoError(t, service.UpdateProduct(context.Background(), *created))

	stored, err := service.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 79000.0, stored.Price)
}

func TestUpdateProduct_RejectsInvalid(t *testing.T) {
	service := NewCatalogService(nopLogger{}, newFakeProductRepository())

	product := validProduct()
	product.ID = "p-1"
	product.Price = -5

	assert.ErrorIs(t, service.UpdateProduct(context.Background(), product), ErrInvalidProduct)
}

func TestUpdateProduct_UnknownID(t *testing.T) {
	service := NewCatalogService(nopLogger{}, newFakeProductRepository())

	product := validProduct()
	product.ID = "missing"

	assert.ErrorIs(t, service.UpdateProduct(context.Background(), product), mongo.ErrNoDocuments)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepository()
	service := NewCatalogService(nopLogger{}, repo)

	created, err := service.AddProduct(context.Background(), validProduct())
	require.NoError(t, err)

	require.NoError(t, service.DeleteProduct(context.Background(), created.ID))
	assert.ErrorIs(t, service.DeleteProduct(context.Background(), created.ID), mongo.ErrNoDocuments)
}

func TestGetProduct_UnknownReturnsNil(t *testing.T) {
	service := NewCatalogService(nopLogger{}, newFakeProductRepository())

	product, err := service.GetProduct(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGetLowStockProducts(t *testing.T) {
	repo := newFakeProductRepository()
	service := NewCatalogService(nopLogger{}, repo)

	low := validProduct()
	low.Stock = 2
	_, err := service.AddProduct(context.Background(), low)
	require.NoError(t, err)

	high := validProduct()
	high.SKU = "LAP-002"
	high.Stock = 40
	_, err = service.AddProduct(context.Background(), high)
	require.NoError(t, err)

	products, err := service.GetLowStockProducts(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].Stock)
}
