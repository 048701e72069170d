package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFulfillmentStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"} {
		status, err := ParseFulfillmentStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, FulfillmentStatus(s), status)
	}

	_, err := ParseFulfillmentStatus("Teleported")
	assert.Error(t, err)

	// Status values are case sensitive
	_, err = ParseFulfillmentStatus("pending")
	assert.Error(t, err)
}

func TestValidateTransition_AnyKnownToAnyKnown(t *testing.T) {
	known := []FulfillmentStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
	for _, from := range known {
		for _, to := range known {
			assert.NoError(t, ValidateTransition(from, to), "%s -> %s should be allowed", from, to)
		}
	}
}

func TestValidateTransition_UnknownStatusRejected(t *testing.T) {
	assert.Error(t, ValidateTransition(StatusPending, "Lost"))
	assert.Error(t, ValidateTransition("Lost", StatusPending))
}

func TestCustomerInfo_Complete(t *testing.T) {
	tests := []struct {
		name     string
		customer CustomerInfo
		complete bool
	}{
		{"all required fields", CustomerInfo{Name: "Rahim", Phone: "01700000000", Address: "Dhaka"}, true},
		{"email optional", CustomerInfo{Name: "Rahim", Phone: "01700000000", Address: "Dhaka", Email: ""}, true},
		{"missing name", CustomerInfo{Phone: "01700000000", Address: "Dhaka"}, false},
		{"missing phone", CustomerInfo{Name: "Rahim", Address: "Dhaka"}, false},
		{"missing address", CustomerInfo{Name: "Rahim", Phone: "01700000000"}, false},
		{"whitespace only name", CustomerInfo{Name: "   ", Phone: "01700000000", Address: "Dhaka"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.customer.Complete())
		})
	}
}
