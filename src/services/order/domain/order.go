package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted at submission. Cash on delivery is the only one
// that routes through the courier integration.
const (
	PaymentCashOnDelivery = "cash_on_delivery"
	PaymentCard           = "card"
	PaymentCash           = "cash"
)

// Order is a finalized cart. Everything except FulfillmentStatus,
// CourierStatus and Notes is immutable after submission.
type Order struct {
	ID                string            `json:"id"`
	OrderNumber       string            `json:"orderNumber"`
	Customer          CustomerInfo      `json:"customer"`
	Lines             []CartLine        `json:"lines"`
	Subtotal          float64           `json:"subtotal"`
	Discount          float64           `json:"discount"`
	Tax               float64           `json:"tax"`
	FinalAmount       float64           `json:"finalAmount"`
	PaymentMethod     string            `json:"paymentMethod"`
	Notes             string            `json:"notes,omitempty"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillmentStatus"`
	CourierStatus     CourierStatus     `json:"courierStatus"`
	TrackingCode      string            `json:"trackingCode,omitempty"`
	OrderDate         time.Time         `json:"orderDate"`
}

// NewOrderNumber issues a collision-free order number. The original system
// derived it from the wall clock, which collides under rapid submissions.
func NewOrderNumber() string {
	return "ORD-" + uuid.NewString()
}

// RequiresCourier reports whether the payment method routes the order
// through the courier booking flow.
func (o *Order) RequiresCourier() bool {
	return o.PaymentMethod == PaymentCashOnDelivery
}
