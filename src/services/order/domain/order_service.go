package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"shop-backoffice/src/infrastructure/log"
	"shop-backoffice/src/services/events"
	"time"

	"github.com/google/uuid"
)

// ListFilter narrows the order listing. Zero values mean "no constraint";
// Page and Limit are normalized by the service.
type ListFilter struct {
	Search    string
	StartDate time.Time
	EndDate   time.Time
	Page      int
	Limit     int
}

// OrderPage is one page of the order list together with the pagination
// facts the client needs.
type OrderPage struct {
	Orders     []Order `json:"orders"`
	TotalPages int     `json:"totalPages"`
	Page       int     `json:"page"`
}

// BookingEvent is a courier booking request parked in the store for replay.
type BookingEvent struct {
	ID        string
	OrderID   string
	EventData []byte
	CreatedAt time.Time
	Replayed  bool
	Status    string
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	CountOrders(ctx context.Context, filter ListFilter) (int64, error)
	FindOrders(ctx context.Context, filter ListFilter, page, limit int) ([]Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
	UpdateOrderStatus(ctx context.Context, orderID string, status FulfillmentStatus) error
	UpdateCourierStatus(ctx context.Context, orderID string, status CourierStatus, trackingCode string) error

	StoreBookingEventAsFailed(ctx context.Context, orderID string, eventData []byte) error
	GetUnreplayedBookingEvents(ctx context.Context, limit int) ([]BookingEvent, error)
	MarkBookingEventAsReplaying(ctx context.Context, eventID string) error
	MarkBookingEventAsCompleted(ctx context.Context, eventID string) error
	MarkBookingEventAsFailed(ctx context.Context, eventID string) error
}

// BookingPublisher dispatches courier booking requests to the queue.
type BookingPublisher interface {
	Publish(topic string, body []byte) error
}

type OrderService interface {
	Submit(ctx context.Context, cart *Cart, customer CustomerInfo, paymentMethod string, discount, tax float64, notes string) (*Order, error)
	Get(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context, filter ListFilter) (*OrderPage, error)
	Delete(ctx context.Context, orderID string) error
	UpdateStatus(ctx context.Context, orderID string, newStatus FulfillmentStatus) (*Order, error)
	ReplayFailedBookings(ctx context.Context) error
}

type orderService struct {
	logger          log.Logger
	publisher       BookingPublisher
	orderRepository OrderRepository
}

func NewOrderService(logger log.Logger, publisher BookingPublisher, orderRepository OrderRepository) OrderService {
	return &orderService{
		logger:          logger,
		publisher:       publisher,
		orderRepository: orderRepository,
	}
}

const defaultPageLimit = 5

// Submit finalizes a cart into a persisted order. Preconditions are checked
// before anything touches the store; a violation never leaves a partial
// order behind. Orders paying cash on delivery additionally get a courier
// booking dispatched after the order is persisted. The booking is a second,
// non-transactional phase: its failure is recorded on the order and in the
// replay store, it never rolls the order back.
func (s *orderService) Submit(ctx context.Context, cart *Cart, customer CustomerInfo, paymentMethod string, discount, tax float64, notes string) (*Order, error) {
	var fields []string
	if cart == nil || cart.IsEmpty() {
		fields = append(fields, "cart")
	}
	fields = append(fields, customer.MissingFields()...)
	if paymentMethod == "" {
		fields = append(fields, "paymentMethod")
	}
	if discount < 0 {
		fields = append(fields, "discount")
	}
	if tax < 0 {
		fields = append(fields, "tax")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	totals := cart.ComputeTotals(discount, tax)
	order := &Order{
		ID:                uuid.NewString(),
		OrderNumber:       NewOrderNumber(),
		Customer:          customer,
		Lines:             cart.Lines(),
		Subtotal:          totals.Subtotal,
		Discount:          totals.Discount,
		Tax:               totals.Tax,
		FinalAmount:       totals.FinalAmount,
		PaymentMethod:     paymentMethod,
		Notes:             notes,
		FulfillmentStatus: StatusPending,
		CourierStatus:     CourierNotRequired,
		OrderDate:         time.Now().UTC(),
	}
	if order.RequiresCourier() {
		order.CourierStatus = CourierPending
	}

	if err := s.orderRepository.InsertOrder(ctx, order); err != nil {
		s.logger.Exception(ctx, "Failed to persist order "+order.OrderNumber, err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.logger.InfoWithExtra(ctx, "Order created", map[string]any{
		"OrderNumber": order.OrderNumber,
		"FinalAmount": order.FinalAmount,
	})

	if order.RequiresCourier() {
		s.dispatchBooking(ctx, order)
	}

	return order, nil
}

// dispatchBooking publishes the courier booking request. On publish failure
// the event is parked in the replay store so ReplayFailedBookings can pick
// it up; the created order is left untouched.
func (s *orderService) dispatchBooking(ctx context.Context, order *Order) {
	event := events.CourierBookingRequestedEvent{
		OrderID:          order.ID,
		OrderNumber:      order.OrderNumber,
		RecipientName:    order.Customer.Name,
		RecipientPhone:   order.Customer.Phone,
		RecipientAddress: order.Customer.Address,
		CODAmount:        order.FinalAmount,
		Note:             order.Notes,
		Version:          1,
		TimeStamp:        time.Now().UTC(),
	}
	if err := event.Validate(); err != nil {
		s.logger.Exception(ctx, "Courier booking event validation failed for order "+order.OrderNumber, err)
		return
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		s.logger.Exception(ctx, "Failed to marshal courier booking event for order "+order.OrderNumber, err)
		return
	}

	const maxRetries = 2
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = s.publisher.Publish(events.CourierBookingRequested, eventJSON)
		if err == nil {
			break
		}
		s.logger.Warn(ctx, fmt.Sprintf("Publish courier booking failed for order %s, attempt %d/%d: %v",
			order.OrderNumber, attempt, maxRetries, err))

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	if err != nil {
		s.logger.Exception(ctx, "Parking courier booking for replay, order "+order.OrderNumber, err)
		if storeErr := s.orderRepository.StoreBookingEventAsFailed(ctx, order.ID, eventJSON); storeErr != nil {
			s.logger.Exception(ctx, "Failed to park courier booking for order "+order.OrderNumber, storeErr)
		}
		return
	}

	s.logger.Info(ctx, "Courier booking requested for order: "+order.OrderNumber)
}

func (s *orderService) Get(ctx context.Context, orderID string) (*Order, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns one page of orders matching the filter. The requested page is
// clamped into [1, totalPages]; out-of-range requests resolve to the nearest
// valid page instead of erroring.
func (s *orderService) List(ctx context.Context, filter ListFilter) (*OrderPage, error) {
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}

	total, err := s.orderRepository.CountOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	orders, err := s.orderRepository.FindOrders(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &OrderPage{
		Orders:     orders,
		TotalPages: totalPages,
		Page:       page,
	}, nil
}

func (s *orderService) Delete(ctx context.Context, orderID string) error {
	if err := s.orderRepository.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.logger.Info(ctx, "Order deleted: "+orderID)
	return nil
}

// UpdateStatus transitions the order's fulfillment status. Setting the
// status it already has is a no-op and performs no store update.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, newStatus FulfillmentStatus) (*Order, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if order.FulfillmentStatus == newStatus {
		return order, nil
	}

	if err := ValidateTransition(order.FulfillmentStatus, newStatus); err != nil {
		return nil, err
	}

	if err := s.orderRepository.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.FulfillmentStatus = newStatus
	s.logger.InfoWithExtra(ctx, "Order status updated", map[string]any{
		"OrderID": orderID,
		"Status":  string(newStatus),
	})
	return order, nil
}

// ReplayFailedBookings republishes parked courier bookings with retry logic
// and status tracking, so a broker outage during submission is recoverable.
func (s *orderService) ReplayFailedBookings(ctx context.Context) error {
	const batchSize = 100
	const maxRetries = 3

	bookingEvents, err := s.orderRepository.GetUnreplayedBookingEvents(ctx, batchSize)
	if err != nil {
		s.logger.Exception(ctx, "failed to fetch unreplayed booking events", err)
		return fmt.Errorf("failed to fetch unreplayed booking events: %w", err)
	}

	if len(bookingEvents) == 0 {
		s.logger.Info(ctx, "No courier bookings to replay")
		return nil
	}

	s.logger.Info(ctx, fmt.Sprintf("Starting replay of %d failed courier bookings", len(bookingEvents)))

	successCount := 0
	failureCount := 0

	for _, evt := range bookingEvents {
		if err := s.orderRepository.MarkBookingEventAsReplaying(ctx, evt.ID); err != nil {
			s.logger.Warn(ctx, fmt.Sprintf("Failed to mark booking event %s as replaying: %v", evt.ID, err))
		}

		var pubErr error
		for attempt := 1; attempt <= maxRetries; attempt++ {
			pubErr = s.publisher.Publish(events.CourierBookingRequested, evt.EventData)
			if pubErr == nil {
				break
			}
			s.logger.Warn(ctx, fmt.Sprintf("Replay publish failed for booking event %s, attempt %d/%d: %v",
				evt.ID, attempt, maxRetries, pubErr))

			time.Sleep(time.Duration(attempt) * time.Second)
		}
		if pubErr == nil {
			if err := s.orderRepository.MarkBookingEventAsCompleted(ctx, evt.ID); err != nil {
				s.logger.Warn(ctx, fmt.Sprintf("Failed to mark booking event %s as completed: %v", evt.ID, err))
			} else {
				successCount++
			}
		} else {
			s.logger.Exception(ctx, fmt.Sprintf("Replay failed for booking event %s after %d retries", evt.ID, maxRetries), pubErr)
			if err := s.orderRepository.MarkBookingEventAsFailed(ctx, evt.ID); err != nil {
				s.logger.Warn(ctx, fmt.Sprintf("Failed to mark booking event %s as failed: %v", evt.ID, err))
			}
			failureCount++
		}
	}

	s.logger.Info(ctx, fmt.Sprintf("Booking replay completed: %d successful, %d failed", successCount, failureCount))

	if failureCount > 0 {
		return fmt.Errorf("replay completed with %d failures out of %d bookings", failureCount, len(bookingEvents))
	}

	return nil
}
