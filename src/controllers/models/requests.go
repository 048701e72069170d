package models

// OrderRequest is the payload to finalize a cart into an order.
type OrderRequest struct {
	Items    []OrderItemRequest `json:"items"`
	Customer CustomerRequest    `json:"customer"`

	PaymentMethod string  `json:"paymentMethod"`
	Discount      float64 `json:"discount"`
	Tax           float64 `json:"tax"`
	Notes         string  `json:"notes"`
}

// OrderItemRequest references a catalog product; the unit price is looked up
// server-side when the cart is assembled, never trusted from the client.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type ProductRequest struct {
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	Category   string  `json:"category"`
	SupplierID string  `json:"supplierId"`
}

type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
