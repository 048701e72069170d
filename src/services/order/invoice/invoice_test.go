package invoice

import (
	"shop-backoffice/src/services/order/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() domain.Order {
	return domain.Order{
		ID:          "o-1",
		OrderNumber: "ORD-4f9d2c1a",
		Customer: domain.CustomerInfo{
			Name:    "Rahim Uddin",
			Phone:   "01700000000",
			Email:   "rahim@example.com",
			Address: "House 12, Mirpur, Dhaka",
		},
		Lines: []domain.CartLine{
			{ProductID: "p-1", Name: "Gaming Laptop", UnitPrice: 85000, Quantity: 1},
			{ProductID: "p-2", Name: "Wireless Mouse", UnitPrice: 1200.5, Quantity: 2},
		},
		Subtotal:          87401,
		Discount:          401,
		Tax:               500,
		FinalAmount:       87500,
		PaymentMethod:     domain.PaymentCashOnDelivery,
		FulfillmentStatus: domain.StatusPending,
		OrderDate:         time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC),
	}
}

func TestRender_SameOrderProducesIdenticalBytes(t *testing.T) {
	renderer := NewRenderer(DefaultCompanyInfo())
	order := sampleOrder()

	first, err := renderer.Render(order)
	require.NoError(t, err)
	second, err := renderer.Render(order)
	require.NoError(t, err)

	assert.Equal(t, first, second, "rendering must be a pure function of the order")
}

func TestRender_ContainsOrderAndCompanyDetails(t *testing.T) {
	renderer := NewRenderer(DefaultCompanyInfo())

	out, err := renderer.Render(sampleOrder())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "ORD-4f9d2c1a")
	assert.Contains(t, html, "07/03/2026")
	assert.Contains(t, html, "Rahim Uddin")
	assert.Contains(t, html, "House 12, Mirpur, Dhaka")
	assert.Contains(t, html, "Koel Shop")
	assert.Contains(t, html, "sales@koelgroupbd.com")
}

func TestRender_TwoCopies(t *testing.T) {
	renderer := NewRenderer(DefaultCompanyInfo())

	out, err := renderer.Render(sampleOrder())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Client Copy")
	assert.Contains(t, html, "Office Copy")
	assert.Equal(t, 2, strings.Count(html, "Order Number: ORD-4f9d2c1a"), "order number appears once per copy")
	assert.Equal(t, 3, strings.Count(html, "ORD-4f9d2c1a"), "document title plus one per copy")
	assert.Equal(t, 2, strings.Count(html, "Thank you for your order!"))
}

func TestRender_LineItemsAndAmountsFormattedToTwoDecimals(t *testing.T) {
	renderer := NewRenderer(DefaultCompanyInfo())

	out, err := renderer.Render(sampleOrder())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Gaming Laptop")
	assert.Contains(t, html, "85000.00")
	assert.Contains(t, html, "Wireless Mouse")
	assert.Contains(t, html, "1200.50")
	assert.Contains(t, html, "2401.00", "line total is unit price times quantity")
	assert.Contains(t, html, "87401.00")
	assert.Contains(t, html, "87500.00")
}

func TestRender_DiscountAndTaxRowsOmittedWhenZero(t *testing.T) {
	renderer := NewRenderer(DefaultCompanyInfo())

	order := sampleOrder()
	order.Discount = 0
	order.Tax = 0
	order.FinalAmount = order.Subtotal

	out, err := renderer.Render(order)
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, "Discount (BDT)")
	assert.NotContains(t, html, "Tax (BDT)")
	assert.Contains(t, html, "Subtotal (BDT)")
	assert.Contains(t, html, "Final Amount (BDT)")
}

func TestRender_DiscountAndTaxRowsPresentWhenSet(t *testing.T) {
	renderer := NewRenderer(DefaultCompanyInfo())

	out, err := renderer.Render(sampleOrder())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Discount (BDT)")
	assert.Contains(t, html, "- 401.00")
	assert.Contains(t, html, "Tax (BDT)")
	assert.Contains(t, html, "500.00")
}

func TestRender_CustomerEmailOmittedWhenEmpty(t *testing.T) {
	renderer := NewRenderer(DefaultCompanyInfo())

	order := sampleOrder()
	order.Customer.Email = ""

	out, err := renderer.Render(order)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "rahim@example.com")
}
