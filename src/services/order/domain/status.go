package domain

import "fmt"

// FulfillmentStatus is the shipping/processing state of a finalized order.
type FulfillmentStatus string

const (
	StatusPending    FulfillmentStatus = "Pending"
	StatusProcessing FulfillmentStatus = "Processing"
	StatusShipped    FulfillmentStatus = "Shipped"
	StatusDelivered  FulfillmentStatus = "Delivered"
	StatusCancelled  FulfillmentStatus = "Cancelled"
)

var knownStatuses = map[FulfillmentStatus]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func ParseFulfillmentStatus(s string) (FulfillmentStatus, error) {
	status := FulfillmentStatus(s)
	if !knownStatuses[status] {
		return "", fmt.Errorf("unknown fulfillment status %q", s)
	}
	return status, nil
}

// ValidateTransition checks a status change. Back-office staff correct
// orders by hand, so any transition between known statuses is allowed;
// this is the single place a stricter graph would be enforced.
func ValidateTransition(from, to FulfillmentStatus) error {
	if !knownStatuses[from] {
		return fmt.Errorf("unknown fulfillment status %q", from)
	}
	if !knownStatuses[to] {
		return fmt.Errorf("unknown fulfillment status %q", to)
	}
	return nil
}

// CourierStatus tracks the second phase of submission: handing the order to
// the courier. It is recorded on the order so a failed booking is visible
// and replayable instead of silently lost.
type CourierStatus string

const (
	CourierNotRequired CourierStatus = "not_required"
	CourierPending     CourierStatus = "pending"
	CourierBooked      CourierStatus = "booked"
	CourierFailed      CourierStatus = "failed"
)
