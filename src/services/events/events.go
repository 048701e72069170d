package events

import (
	"errors"
	"time"
)

const (
	// Queue / routing key for courier booking dispatch
	CourierBookingRequested    = "courier.booking.requested"
	CourierBookingRequestedDLQ = "courier.booking.requested.dlq"

	// Event status enums for the booking_events collection
	EventStatusPending   = "pending"   // Event is waiting to be processed
	EventStatusFailed    = "failed"    // Event processing failed, needs replay
	EventStatusCompleted = "completed" // Event was successfully processed
	EventStatusReplaying = "replaying" // Event is currently being replayed
)

// CourierBookingRequestedEvent asks the booking worker to hand an order over
// to the courier. It carries everything the courier API needs so the worker
// never has to read the order back first.
type CourierBookingRequestedEvent struct {
	OrderID          string    `json:"orderId"`
	OrderNumber      string    `json:"orderNumber"`
	RecipientName    string    `json:"recipientName"`
	RecipientPhone   string    `json:"recipientPhone"`
	RecipientAddress string    `json:"recipientAddress"`
	CODAmount        float64   `json:"codAmount"`
	Note             string    `json:"note"`
	Version          int       `json:"version"`
	TimeStamp        time.Time `json:"timestamp"`
}

func (e *CourierBookingRequestedEvent) Validate() error {
	if e.OrderID == "" || e.OrderNumber == "" || e.RecipientName == "" || e.RecipientPhone == "" || e.RecipientAddress == "" {
		return errors.New("missing required fields in CourierBookingRequestedEvent")
	}
	if e.CODAmount < 0 {
		return errors.New("cod amount cannot be negative in CourierBookingRequestedEvent")
	}
	return nil
}
