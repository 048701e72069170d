package supplier

import (
	"context"
	"shop-backoffice/src/infrastructure/log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeSupplierRepository struct {
	suppliers map[string]Supplier
	addCalls  int
}

func newFakeSupplierRepository() *fakeSupplierRepository {
	return &fakeSupplierRepository{suppliers: map[string]Supplier{}}
}

func (f *fakeSupplierRepository) GetSupplierByID(_ context.Context, supplierID string) (*Supplier, error) {
	supplier, ok := f.suppliers[supplierID]
	if !ok {
		return nil, nil
	}
	return &supplier, nil
}

func (f *fakeSupplierRepository) GetAllSuppliers(_ context.Context) ([]Supplier, error) {
	var all []Supplier
	for _, supplier := range f.suppliers {
		all = append(all, supplier)
	}
	return all, nil
}

func (f *fakeSupplierRepository) AddSupplier(_ context.Context, supplier Supplier) error {
	f.addCalls++
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepository) UpdateSupplier(_ context.Context, supplier Supplier) error {
	if _, ok := f.suppliers[supplier.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepository) DeleteSupplier(_ context.Context, supplierID string) error {
	if _, ok := f.suppliers[supplierID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.suppliers, supplierID)
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

func TestAddSupplier_AssignsID(t *testing.T) {
	repo := newFakeSupplierRepository()
	service := NewSupplierService(nopLogger{}, repo)

	created, err := service.AddSupplier(context.Background(), Supplier{
		Name:    "Koel Distribution Ltd",
		Contact: "Karim",
		Email:   "karim@koelgroupbd.com",
		Phone:   "01800000000",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, repo.addCalls)
}

func TestAddSupplier_BlankNameRejected(t *testing.T) {
	repo := newFakeSupplierRepository()
	service := NewSupplierService(nopLogger{}, repo)

	_, err := service.AddSupplier(context.Background(), Supplier{Name: "   "})

	assert.ErrorIs(t, err, ErrInvalidSupplier)
	assert.Equal(t, 0, repo.addCalls)
}

func TestUpdateSupplier(t *testing.T) {
	repo := newFakeSupplierRepository()
	service := NewSupplierService(nopLogger{}, repo)

	created, err := service.AddSupplier(context.Background(), Supplier{Name: "Koel Distribution Ltd"})
	require.NoError(t, err)

	created.Phone = "01911111111"
	require.NoError(t, service.UpdateSupplier(context.Background(), *created))

	stored, err := service.GetSupplier(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "01911111111", stored.Phone)
}

func TestUpdateSupplier_UnknownID(t *testing.T) {
	service := NewSupplierService(nopLogger{}, newFakeSupplierRepository())

	err := service.UpdateSupplier(context.Background(), Supplier{ID: "missing", Name: "Someone"})
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestDeleteSupplier(t *testing.T) {
	repo := newFakeSupplierRepository()
	service := NewSupplierService(nopLogger{}, repo)

	created, err := service.AddSupplier(context.Background(), Supplier{Name: "Koel Distribution Ltd"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteSupplier(context.Background(), created.ID))
	assert.ErrorIs(t, service.DeleteSupplier(context.Background(), created.ID), mongo.ErrNoDocuments)
}

func TestGetSupplier_UnknownReturnsNil(t *testing.T) {
	service := NewSupplierService(nopLogger{}, newFakeSupplierRepository())

	supplier, err := service.GetSupplier(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, supplier)
}
