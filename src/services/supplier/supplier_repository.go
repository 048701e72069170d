package supplier

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Supplier struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Contact string `bson:"contact" json:"contact"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
}

type SupplierRepository interface {
	GetSupplierByID(ctx context.Context, supplierID string) (*Supplier, error)
	GetAllSuppliers(ctx context.Context) ([]Supplier, error)
	AddSupplier(ctx context.Context, supplier Supplier) error
	UpdateSupplier(ctx context.Context, supplier Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

type supplierRepository struct {
	collection *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) SupplierRepository {
	return &supplierRepository{
		collection: db.Collection("suppliers"),
	}
}

func (r *supplierRepository) GetSupplierByID(ctx context.Context, supplierID string) (*Supplier, error) {
	var supplier Supplier
	err := r.collection.FindOne(ctx, bson.M{"id": supplierID}).Decode(&supplier)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) GetAllSuppliers(ctx context.Context) ([]Supplier, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var suppliers []Supplier
	for cursor.Next(ctx) {
		var supplier Supplier
		if err := cursor.Decode(&supplier); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, nil
}

func (r *supplierRepository) AddSupplier(ctx context.Context, supplier Supplier) error {
	_, err := r.collection.InsertOne(ctx, supplier)
	return err
}

func (r *supplierRepository) UpdateSupplier(ctx context.Context, supplier Supplier) error {
	filter := bson.M{"id": supplier.ID}
	update := bson.M{"$set": bson.M{
		"name":    supplier.Name,
		"contact": supplier.Contact,
		"email":   supplier.Email,
		"phone":   supplier.Phone,
	}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *supplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": supplierID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
