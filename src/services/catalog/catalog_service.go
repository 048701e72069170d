package catalog

import (
	"context"
	"errors"
	"shop-backoffice/src/infrastructure/log"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidProduct = errors.New("product name, sku and non-negative price/stock are required")

type CatalogService interface {
	GetProduct(ctx context.Context, productID string) (*Product, error)
	GetAllProducts(ctx context.Context) ([]Product, error)
	GetLowStockProducts(ctx context.Context, threshold int) ([]Product, error)
	AddProduct(ctx context.Context, product Product) (*Product, error)
	UpdateProduct(ctx context.Context, product Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

type catalogService struct {
	logger            log.Logger
	productRepository ProductRepository
}

func NewCatalogService(logger log.Logger, productRepo ProductRepository) CatalogService {
	return &catalogService{
		logger:            logger,
		productRepository: productRepo,
	}
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*Product, error) {
	return s.productRepository.GetProductByID(ctx, productID)
}

func (s *catalogService) GetAllProducts(ctx context.Context) ([]Product, error) {
	return s.productRepository.GetAllProducts(ctx)
}

func (s *catalogService) GetLowStockProducts(ctx context.Context, threshold int) ([]Product, error) {
	return s.productRepository.GetLowStockProducts(ctx, threshold)
}

// AddProduct validates the product, assigns it an id and stores it.
func (s *catalogService) AddProduct(ctx context.Context, product Product) (*Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	product.ID = uuid.NewString()
	if err := s.productRepository.AddProduct(ctx, product); err != nil {
		s.logger.Exception(ctx, "Failed to add product: "+product.Name, err)
		return nil, err
	}
	s.logger.Info(ctx, "Product added to catalog: "+product.ID)
	return &product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, product Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	return s.productRepository.DeleteProduct(ctx, productID)
}

func validateProduct(product Product) error {
	if strings.TrimSpace(product.Name) == "" || strings.TrimSpace(product.SKU) == "" {
		return ErrInvalidProduct
	}
	if product.Price < 0 || product.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}
