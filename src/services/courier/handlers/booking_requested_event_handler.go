package handlers

import (
	"context"
	"encoding/json"
	"shop-backoffice/src/infrastructure/courier"
	"shop-backoffice/src/infrastructure/log"
	"shop-backoffice/src/services/events"
	"shop-backoffice/src/services/order/domain"
)

// CourierBooker is the slice of the courier client the worker needs.
type CourierBooker interface {
	CreateBooking(ctx context.Context, booking courier.BookingRequest) (*courier.BookingResponse, error)
}

// BookingStore records the outcome of a booking attempt on the order.
type BookingStore interface {
	UpdateCourierStatus(ctx context.Context, orderID string, status domain.CourierStatus, trackingCode string) error
}

type BookingPublisher interface {
	Publish(topic string, body []byte) error
}

// BookingRequestedEventHandler consumes courier booking requests and calls
// the courier API. Failures are marked on the order and routed to the DLQ.
type BookingRequestedEventHandler struct {
	courierClient CourierBooker
	bookingStore  BookingStore
	publisher     BookingPublisher
	logger        log.Logger
}

func NewBookingRequestedEventHandler(
	courierClient CourierBooker,
	bookingStore BookingStore,
	publisher BookingPublisher,
	logger log.Logger,
) *BookingRequestedEventHandler {
	return &BookingRequestedEventHandler{
		courierClient: courierClient,
		bookingStore:  bookingStore,
		publisher:     publisher,
		logger:        logger,
	}
}

// Handle processes one CourierBookingRequestedEvent message
func (h *BookingRequestedEventHandler) Handle(ctx context.Context, msgBody []byte) {
	var event events.CourierBookingRequestedEvent
	if err := json.Unmarshal(msgBody, &event); err != nil {
		h.logger.Exception(ctx, "Failed to unmarshal CourierBookingRequestedEvent", err)
		h.sendToDLQ(ctx, msgBody)
		return
	}

	if err := event.Validate(); err != nil {
		h.logger.Exception(ctx, "Invalid courier booking event for order "+event.OrderNumber, err)
		h.sendToDLQ(ctx, msgBody)
		return
	}

	booking := courier.BookingRequest{
		Invoice:          event.OrderNumber,
		RecipientName:    event.RecipientName,
		RecipientPhone:   event.RecipientPhone,
		RecipientAddress: event.RecipientAddress,
		CODAmount:        event.CODAmount,
		Note:             event.Note,
	}

	resp, err := h.courierClient.CreateBooking(ctx, booking)
	if err != nil {
		h.logger.Exception(ctx, "Courier booking failed for order "+event.OrderNumber, err)
		if markErr := h.bookingStore.UpdateCourierStatus(ctx, event.OrderID, domain.CourierFailed, ""); markErr != nil {
			h.logger.Exception(ctx, "Failed to mark courier status failed for order "+event.OrderNumber, markErr)
		}
		h.sendToDLQ(ctx, msgBody)
		return
	}

	if err := h.bookingStore.UpdateCourierStatus(ctx, event.OrderID, domain.CourierBooked, resp.TrackingCode); err != nil {
		h.logger.Exception(ctx, "Failed to mark courier status booked for order "+event.OrderNumber, err)
		return
	}

	h.logger.InfoWithExtra(ctx, "Courier booking confirmed", map[string]any{
		"OrderNumber":  event.OrderNumber,
		"TrackingCode": resp.TrackingCode,
	})
}

func (h *BookingRequestedEventHandler) sendToDLQ(ctx context.Context, body []byte) {
	if err := h.publisher.Publish(events.CourierBookingRequestedDLQ, body); err != nil {
		h.logger.Exception(ctx, "Failed to send booking event to DLQ", err)
	}
}
