package controllers

import (
	"errors"

	"shop-backoffice/src/controllers/models"
	"shop-backoffice/src/services/supplier"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type SupplierController struct {
	supplierService supplier.SupplierService
}

func NewSupplierController(supplierService supplier.SupplierService) *SupplierController {
	return &SupplierController{
		supplierService: supplierService,
	}
}

func (c *SupplierController) Route(app *fiber.App) {
	api := app.Group("/api/v1/suppliers")
	api.Get("/", c.GetAllSuppliers)
	api.Get("/:id", c.GetSupplier)
	api.Post("/", c.AddSupplier)
	api.Put("/:id", c.UpdateSupplier)
	api.Delete("/:id", c.DeleteSupplier)
}

// GetAllSuppliers godoc
// @Summary      Get all suppliers
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  supplier.Supplier
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/suppliers [get]
func (c *SupplierController) GetAllSuppliers(ctx *fiber.Ctx) error {
	suppliers, err := c.supplierService.GetAllSuppliers(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(suppliers)
}

// GetSupplier godoc
// @Summary      Get supplier by ID
// @Tags         suppliers
// @Produce      json
// @Param        id   path      string  true  "Supplier ID"
// @Success      200  {object}  supplier.Supplier
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/suppliers/{id} [get]
func (c *SupplierController) GetSupplier(ctx *fiber.Ctx) error {
	result, err := c.supplierService.GetSupplier(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if result == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
	}
	return ctx.JSON(result)
}

// AddSupplier godoc
// @Summary      Add a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        supplier  body  models.SupplierRequest  true  "Supplier payload"
// @Success      201  {object}  supplier.Supplier
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/suppliers [post]
func (c *SupplierController) AddSupplier(ctx *fiber.Ctx) error {
	var req models.SupplierRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	result, err := c.supplierService.AddSupplier(ctx.UserContext(), supplier.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		if errors.Is(err, supplier.ErrInvalidSupplier) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(result)
}

// UpdateSupplier godoc
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id        path  string                  true  "Supplier ID"
// @Param        supplier  body  models.SupplierRequest  true  "Supplier payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/suppliers/{id} [put]
func (c *SupplierController) UpdateSupplier(ctx *fiber.Ctx) error {
	var req models.SupplierRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	err := c.supplierService.UpdateSupplier(ctx.UserContext(), supplier.Supplier{
		ID:      ctx.Params("id"),
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		if errors.Is(err, supplier.ErrInvalidSupplier) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Supplier updated successfully"})
}

// DeleteSupplier godoc
// @Summary      Delete a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id   path      string  true  "Supplier ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/suppliers/{id} [delete]
func (c *SupplierController) DeleteSupplier(ctx *fiber.Ctx) error {
	err := c.supplierService.DeleteSupplier(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}
