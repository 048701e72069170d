package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"shop-backoffice/src/services/events"
	"shop-backoffice/src/services/order/domain"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreBookingEventAsFailed parks a courier booking request that could not
// be published, so it can be replayed later.
func (r *OrderRepository) StoreBookingEventAsFailed(ctx context.Context, orderID string, eventData []byte) error {
	if !json.Valid(eventData) {
		return errors.New("invalid JSON event data")
	}

	doc := bookingEventDocument{
		ID:        primitive.NewObjectID().Hex(),
		OrderID:   orderID,
		EventData: eventData,
		CreatedAt: time.Now().UTC(),
		Replayed:  false,
		Status:    events.EventStatusFailed,
	}

	_, err := r.bookingEvents.InsertOne(ctx, doc)
	return err
}

// GetUnreplayedBookingEvents fetches parked bookings that have not been
// replayed yet, oldest first.
func (r *OrderRepository) GetUnreplayedBookingEvents(ctx context.Context, limit int) ([]domain.BookingEvent, error) {
	filter := bson.M{
		"replayed": bson.M{"$ne": true},
		"status":   bson.M{"$in": []string{events.EventStatusPending, events.EventStatusFailed}},
	}
	opts := options.Find().SetLimit(int64(limit)).SetSort(bson.D{bson.E{Key: "createdAt", Value: 1}})
	cursor, err := r.bookingEvents.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookingEvents []domain.BookingEvent
	for cursor.Next(ctx) {
		var doc bookingEventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		bookingEvents = append(bookingEvents, domain.BookingEvent{
			ID:        doc.ID,
			OrderID:   doc.OrderID,
			EventData: doc.EventData,
			CreatedAt: doc.CreatedAt,
			Replayed:  doc.Replayed,
			Status:    doc.Status,
		})
	}
	return bookingEvents, nil
}

// MarkBookingEventAsReplaying marks a booking as currently being replayed
func (r *OrderRepository) MarkBookingEventAsReplaying(ctx context.Context, eventID string) error {
	_, err := r.bookingEvents.UpdateOne(ctx, bson.M{"_id": eventID}, bson.M{"$set": bson.M{
		"status": events.EventStatusReplaying,
	}})
	return err
}

// MarkBookingEventAsCompleted marks a booking as successfully republished
func (r *OrderRepository) MarkBookingEventAsCompleted(ctx context.Context, eventID string) error {
	now := time.Now().UTC()
	_, err := r.bookingEvents.UpdateOne(ctx, bson.M{"_id": eventID}, bson.M{"$set": bson.M{
		"status":     events.EventStatusCompleted,
		"replayed":   true,
		"replayedAt": now,
	}})
	return err
}

// MarkBookingEventAsFailed marks a booking as failed for a future replay
func (r *OrderRepository) MarkBookingEventAsFailed(ctx context.Context, eventID string) error {
	_, err := r.bookingEvents.UpdateOne(ctx, bson.M{"_id": eventID}, bson.M{"$set": bson.M{
		"status": events.EventStatusFailed,
	}})
	return err
}
