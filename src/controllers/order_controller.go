package controllers

import (
	"errors"
	"time"

	"shop-backoffice/src/controllers/models"
	"shop-backoffice/src/services/catalog"
	"shop-backoffice/src/services/order/domain"
	"shop-backoffice/src/services/order/invoice"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	orderService    domain.OrderService
	catalogService  catalog.CatalogService
	invoiceRenderer *invoice.Renderer
}

func NewOrderController(orderService domain.OrderService, catalogService catalog.CatalogService, invoiceRenderer *invoice.Renderer) *OrderController {
	return &OrderController{
		orderService:    orderService,
		catalogService:  catalogService,
		invoiceRenderer: invoiceRenderer,
	}
}

func (c *OrderController) Route(app *fiber.App) {
	api := app.Group("/api/v1/orders")
	api.Post("/", c.CreateOrder)
	api.Get("/", c.ListOrders)
	api.Get("/:id", c.GetOrder)
	api.Delete("/:id", c.DeleteOrder)
	api.Patch("/:id/status", c.UpdateOrderStatus)
	api.Get("/:id/invoice", c.GetInvoice)
	api.Post("/replay-failed-bookings", c.ReplayFailedBookings)
}

// CreateOrder godoc
// @Summary      Create a new order
// @Description  Assembles a cart from catalog products and finalizes it into a persisted order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body  models.OrderRequest  true  "Order payload"
// @Success      201  {object}  domain.Order
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders [post]
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var req models.OrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	// Assemble the cart server-side so unit prices come from the catalog at
	// add time, not from the client.
	cart := domain.NewCart()
	for _, item := range req.Items {
		product, err := c.catalogService.GetProduct(ctx.UserContext(), item.ProductID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if product == nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown product: " + item.ProductID})
		}
		cart.AddItem(*product)
		cart.SetQuantity(product.ID, item.Quantity)
	}

	customer := domain.CustomerInfo{
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Email:   req.Customer.Email,
		Address: req.Customer.Address,
	}

	order, err := c.orderService.Submit(ctx.UserContext(), cart, customer, req.PaymentMethod, req.Discount, req.Tax, req.Notes)
	if err != nil {
		if domain.IsValidationError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(order)
}

// ListOrders godoc
// @Summary      List orders
// @Description  Returns a page of orders filtered by search term and date range
// @Tags         orders
// @Produce      json
// @Param        search     query  string  false  "Match against order number or customer name"
// @Param        page       query  int     false  "Page number"
// @Param        limit      query  int     false  "Page size"
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  domain.OrderPage
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders [get]
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	filter := domain.ListFilter{
		Search: ctx.Query("search"),
		Page:   ctx.QueryInt("page", 1),
		Limit:  ctx.QueryInt("limit", 5),
	}

	if start := ctx.Query("startDate"); start != "" {
		parsed, err := time.Parse("2006-01-02", start)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid startDate"})
		}
		filter.StartDate = parsed
	}
	if end := ctx.Query("endDate"); end != "" {
		parsed, err := time.Parse("2006-01-02", end)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid endDate"})
		}
		// Inclusive until the end of the day
		filter.EndDate = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	page, err := c.orderService.List(ctx.UserContext(), filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(page)
}

// GetOrder godoc
// @Summary      Get order by ID
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders/{id} [get]
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	order, err := c.orderService.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(order)
}

// DeleteOrder godoc
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders/{id} [delete]
func (c *OrderController) DeleteOrder(ctx *fiber.Ctx) error {
	err := c.orderService.Delete(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Order deleted successfully"})
}

// UpdateOrderStatus godoc
// @Summary      Update fulfillment status
// @Description  Transitions an order's fulfillment status; setting the current status is a no-op
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path  string                      true  "Order ID"
// @Param        status  body  models.StatusUpdateRequest  true  "New status"
// @Success      200  {object}  domain.Order
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders/{id}/status [patch]
func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	var req models.StatusUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	status, err := domain.ParseFulfillmentStatus(req.Status)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := c.orderService.UpdateStatus(ctx.UserContext(), ctx.Params("id"), status)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(order)
}

// GetInvoice godoc
// @Summary      Render the printable invoice
// @Description  Produces the two-copy HTML invoice for a finalized order
// @Tags         orders
// @Produce      html
// @Param        id   path      string  true  "Order ID"
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders/{id}/invoice [get]
func (c *OrderController) GetInvoice(ctx *fiber.Ctx) error {
	order, err := c.orderService.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	document, err := c.invoiceRenderer.Render(*order)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Type("html")
	return ctx.Send(document)
}

// ReplayFailedBookings godoc
// @Summary      Replay failed courier bookings
// @Description  Republishes parked courier booking requests that have not been dispatched
// @Tags         orders
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders/replay-failed-bookings [post]
func (c *OrderController) ReplayFailedBookings(ctx *fiber.Ctx) error {
	if err := c.orderService.ReplayFailedBookings(ctx.UserContext()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "Replay complete"})
}
