package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Product struct {
	ID         string  `bson:"id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	SKU        string  `bson:"sku" json:"sku"`
	Price      float64 `bson:"price" json:"price"`
	Stock      int     `bson:"stock" json:"stock"`
	Category   string  `bson:"category" json:"category"`
	SupplierID string  `bson:"supplier_id,omitempty" json:"supplierId,omitempty"`
}

type ProductRepository interface {
	GetProductByID(ctx context.Context, productID string) (*Product, error)
	GetAllProducts(ctx context.Context) ([]Product, error)
	GetLowStockProducts(ctx context.Context, threshold int) ([]Product, error)
	AddProduct(ctx context.Context, product Product) error
	UpdateProduct(ctx context.Context, product Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{
		collection: db.Collection("products"),
	}
}

func (r *productRepository) GetProductByID(ctx context.Context, productID string) (*Product, error) {
	var product Product
	err := r.collection.FindOne(ctx, bson.M{"id": productID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Product not found
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []Product
	for cursor.Next(ctx) {
		var product Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// GetLowStockProducts returns products with stock below the threshold
func (r *productRepository) GetLowStockProducts(ctx context.Context, threshold int) ([]Product, error) {
	filter := bson.M{"stock": bson.M{"$lt": threshold}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []Product
	for cursor.Next(ctx) {
		var product Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *productRepository) AddProduct(ctx context.Context, product Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *productRepository) UpdateProduct(ctx context.Context, product Product) error {
	filter := bson.M{"id": product.ID}
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"sku":         product.SKU,
		"price":       product.Price,
		"stock":       product.Stock,
		"category":    product.Category,
		"supplier_id": product.SupplierID,
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

func (r *productRepository) DeleteProduct(ctx context.Context, productID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": productID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
