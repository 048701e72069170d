package handlers

import (
	"context"
	"encoding/json"
	"shop-backoffice/src/infrastructure/log"
	"shop-backoffice/src/services/events"
)

// DLQStore parks dead-lettered booking requests for later replay.
type DLQStore interface {
	StoreBookingEventAsFailed(ctx context.Context, orderID string, eventData []byte) error
}

// BookingDLQHandler drains the booking dead-letter queue into the replay
// store, so the replay endpoint can re-dispatch them.
type BookingDLQHandler struct {
	dlqStore DLQStore
	logger   log.Logger
}

func NewBookingDLQHandler(dlqStore DLQStore, logger log.Logger) *BookingDLQHandler {
	return &BookingDLQHandler{
		dlqStore: dlqStore,
		logger:   logger,
	}
}

func (h *BookingDLQHandler) Handle(ctx context.Context, msgBody []byte) {
	var event events.CourierBookingRequestedEvent
	if err := json.Unmarshal(msgBody, &event); err != nil {
		h.logger.Exception(ctx, "Failed to unmarshal dead-lettered booking event, dropping", err)
		return
	}

	if err := h.dlqStore.StoreBookingEventAsFailed(ctx, event.OrderID, msgBody); err != nil {
		h.logger.Exception(ctx, "Failed to park dead-lettered booking for order "+event.OrderNumber, err)
		return
	}

	h.logger.Warn(ctx, "Courier booking parked for replay, order: "+event.OrderNumber)
}
