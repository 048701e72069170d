package controllers

import (
	"shop-backoffice/src/infrastructure/courier"

	"github.com/gofiber/fiber/v2"
)

// CourierController proxies courier portal reads so the API credentials
// never leave the server.
type CourierController struct {
	courierClient *courier.Client
}

func NewCourierController(courierClient *courier.Client) *CourierController {
	return &CourierController{
		courierClient: courierClient,
	}
}

func (c *CourierController) Route(app *fiber.App) {
	api := app.Group("/api/v1/courier")
	api.Get("/balance", c.GetBalance)
}

// GetBalance godoc
// @Summary      Get courier account balance
// @Description  Fetches the current prepaid balance from the courier portal
// @Tags         courier
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/v1/courier/balance [get]
func (c *CourierController) GetBalance(ctx *fiber.Ctx) error {
	balance, err := c.courierClient.GetBalance(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"current_balance": balance})
}
