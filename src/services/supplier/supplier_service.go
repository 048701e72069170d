package supplier

import (
	"context"
	"errors"
	"shop-backoffice/src/infrastructure/log"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidSupplier = errors.New("supplier name is required")

type SupplierService interface {
	GetSupplier(ctx context.Context, supplierID string) (*Supplier, error)
	GetAllSuppliers(ctx context.Context) ([]Supplier, error)
	AddSupplier(ctx context.Context, supplier Supplier) (*Supplier, error)
	UpdateSupplier(ctx context.Context, supplier Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

type supplierService struct {
	logger             log.Logger
	supplierRepository SupplierRepository
}

func NewSupplierService(logger log.Logger, supplierRepo SupplierRepository) SupplierService {
	return &supplierService{
		logger:             logger,
		supplierRepository: supplierRepo,
	}
}

func (s *supplierService) GetSupplier(ctx context.Context, supplierID string) (*Supplier, error) {
	return s.supplierRepository.GetSupplierByID(ctx, supplierID)
}

func (s *supplierService) GetAllSuppliers(ctx context.Context) ([]Supplier, error) {
	return s.supplierRepository.GetAllSuppliers(ctx)
}

func (s *supplierService) AddSupplier(ctx context.Context, supplier Supplier) (*Supplier, error) {
	if strings.TrimSpace(supplier.Name) == "" {
		return nil, ErrInvalidSupplier
	}

	supplier.ID = uuid.NewString()
	if err := s.supplierRepository.AddSupplier(ctx, supplier); err != nil {
		s.logger.Exception(ctx, "Failed to add supplier: "+supplier.Name, err)
		return nil, err
	}
	s.logger.Info(ctx, "Supplier added: "+supplier.ID)
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplier Supplier) error {
	if strings.TrimSpace(supplier.Name) == "" {
		return ErrInvalidSupplier
	}
	return s.supplierRepository.UpdateSupplier(ctx, supplier)
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	return s.supplierRepository.DeleteSupplier(ctx, supplierID)
}
