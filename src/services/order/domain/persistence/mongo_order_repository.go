package persistence

import (
	"context"
	"regexp"
	"shop-backoffice/src/services/order/domain"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository is the MongoDB implementation of domain.OrderRepository.
// Orders live in the "orders" collection, parked courier bookings in
// "booking_events".
type OrderRepository struct {
	orders        *mongo.Collection
	bookingEvents *mongo.Collection
}

// OrderDocument is the storage model for MongoDB
type OrderDocument struct {
	ID                string             `bson:"id"`
	OrderNumber       string             `bson:"order_number"`
	Customer          CustomerDocument   `bson:"customer"`
	Lines             []CartLineDocument `bson:"lines"`
	Subtotal          float64            `bson:"subtotal"`
	Discount          float64            `bson:"discount"`
	Tax               float64            `bson:"tax"`
	FinalAmount       float64            `bson:"final_amount"`
	PaymentMethod     string             `bson:"payment_method"`
	Notes             string             `bson:"notes,omitempty"`
	FulfillmentStatus string             `bson:"fulfillment_status"`
	CourierStatus     string             `bson:"courier_status"`
	TrackingCode      string             `bson:"tracking_code,omitempty"`
	OrderDate         time.Time          `bson:"order_date"`
}

type CustomerDocument struct {
	Name    string `bson:"name"`
	Phone   string `bson:"phone"`
	Email   string `bson:"email,omitempty"`
	Address string `bson:"address"`
}

type CartLineDocument struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	UnitPrice float64 `bson:"unit_price"`
	Quantity  int     `bson:"quantity"`
}

type bookingEventDocument struct {
	ID         string     `bson:"_id,omitempty"`
	OrderID    string     `bson:"orderId"`
	EventData  []byte     `bson:"eventData"`
	CreatedAt  time.Time  `bson:"createdAt"`
	Replayed   bool       `bson:"replayed"`
	ReplayedAt *time.Time `bson:"replayedAt,omitempty"`
	Status     string     `bson:"status"`
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		orders:        db.Collection("orders"),
		bookingEvents: db.Collection("booking_events"),
	}
}

func (r *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	_, err := r.orders.InsertOne(ctx, toDocument(order))
	return err
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var doc OrderDocument
	err := r.orders.FindOne(ctx, bson.M{"id": orderID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return fromDocument(&doc), nil
}

func (r *OrderRepository) CountOrders(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return r.orders.CountDocuments(ctx, buildFilter(filter))
}

// FindOrders returns one page of matching orders, newest first.
func (r *OrderRepository) FindOrders(ctx context.Context, filter domain.ListFilter, page, limit int) ([]domain.Order, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{bson.E{Key: "order_date", Value: -1}})

	cursor, err := r.orders.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	for cursor.Next(ctx) {
		var doc OrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		orders = append(orders, *fromDocument(&doc))
	}
	return orders, nil
}

// buildFilter translates a ListFilter into a MongoDB query. Search matches
// the order number and customer name as a case-insensitive literal
// substring; the term is quoted so regex metacharacters have no effect.
func buildFilter(filter domain.ListFilter) bson.M {
	query := bson.M{}

	if filter.Search != "" {
		regex := bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
		query["$or"] = []bson.M{
			{"order_number": regex},
			{"customer.name": regex},
		}
	}

	dateRange := bson.M{}
	if !filter.StartDate.IsZero() {
		dateRange["$gte"] = filter.StartDate
	}
	if !filter.EndDate.IsZero() {
		dateRange["$lte"] = filter.EndDate
	}
	if len(dateRange) > 0 {
		query["order_date"] = dateRange
	}

	return query
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	res, err := r.orders.DeleteOne(ctx, bson.M{"id": orderID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.FulfillmentStatus) error {
	res, err := r.orders.UpdateOne(ctx, bson.M{"id": orderID}, bson.M{"$set": bson.M{
		"fulfillment_status": string(status),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateCourierStatus(ctx context.Context, orderID string, status domain.CourierStatus, trackingCode string) error {
	update := bson.M{"courier_status": string(status)}
	if trackingCode != "" {
		update["tracking_code"] = trackingCode
	}
	res, err := r.orders.UpdateOne(ctx, bson.M{"id": orderID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func toDocument(order *domain.Order) *OrderDocument {
	lines := make([]CartLineDocument, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = CartLineDocument{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
	}
	return &OrderDocument{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Customer: CustomerDocument{
			Name:    order.Customer.Name,
			Phone:   order.Customer.Phone,
			Email:   order.Customer.Email,
			Address: order.Customer.Address,
		},
		Lines:             lines,
		Subtotal:          order.Subtotal,
		Discount:          order.Discount,
		Tax:               order.Tax,
		FinalAmount:       order.FinalAmount,
		PaymentMethod:     order.PaymentMethod,
		Notes:             order.Notes,
		FulfillmentStatus: string(order.FulfillmentStatus),
		CourierStatus:     string(order.CourierStatus),
		TrackingCode:      order.TrackingCode,
		OrderDate:         order.OrderDate,
	}
}

func fromDocument(doc *OrderDocument) *domain.Order {
	lines := make([]domain.CartLine, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = domain.CartLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
	}
	return &domain.Order{
		ID:          doc.ID,
		OrderNumber: doc.OrderNumber,
		Customer: domain.CustomerInfo{
			Name:    doc.Customer.Name,
			Phone:   doc.Customer.Phone,
			Email:   doc.Customer.Email,
			Address: doc.Customer.Address,
		},
		Lines:             lines,
		Subtotal:          doc.Subtotal,
		Discount:          doc.Discount,
		Tax:               doc.Tax,
		FinalAmount:       doc.FinalAmount,
		PaymentMethod:     doc.PaymentMethod,
		Notes:             doc.Notes,
		FulfillmentStatus: domain.FulfillmentStatus(doc.FulfillmentStatus),
		CourierStatus:     domain.CourierStatus(doc.CourierStatus),
		TrackingCode:      doc.TrackingCode,
		OrderDate:         doc.OrderDate,
	}
}
