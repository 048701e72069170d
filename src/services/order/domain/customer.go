package domain

import "strings"

// CustomerInfo is the recipient identity and address for an order. Email is
// optional; the fields are free text, no format validation is applied.
type CustomerInfo struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Address string `bson:"address" json:"address"`
}

// Complete reports whether the customer info is sufficient for submission.
func (c CustomerInfo) Complete() bool {
	return len(c.MissingFields()) == 0
}

// MissingFields lists the required fields that are empty after trimming.
func (c CustomerInfo) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "customer.name")
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "customer.phone")
	}
	if strings.TrimSpace(c.Address) == "" {
		missing = append(missing, "customer.address")
	}
	return missing
}
