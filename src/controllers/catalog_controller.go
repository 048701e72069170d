package controllers

import (
	"errors"
	"strconv"

	"shop-backoffice/src/controllers/models"
	"shop-backoffice/src/services/catalog"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogController struct {
	catalogService catalog.CatalogService
}

func NewCatalogController(catalogService catalog.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (c *CatalogController) Route(app *fiber.App) {
	api := app.Group("/api/v1/products")
	api.Get("/", c.GetAllProducts)
	api.Get("/low-stock/:threshold", c.GetLowStockProducts)
	api.Get("/:id", c.GetProduct)
	api.Post("/", c.AddProduct)
	api.Put("/:id", c.UpdateProduct)
	api.Delete("/:id", c.DeleteProduct)
}

// GetAllProducts godoc
// @Summary      Get all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  catalog.Product
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/products [get]
func (c *CatalogController) GetAllProducts(ctx *fiber.Ctx) error {
	products, err := c.catalogService.GetAllProducts(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(products)
}

// GetProduct godoc
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  catalog.Product
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/products/{id} [get]
func (c *CatalogController) GetProduct(ctx *fiber.Ctx) error {
	product, err := c.catalogService.GetProduct(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if product == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return ctx.JSON(product)
}

// GetLowStockProducts godoc
// @Summary      Get low stock products
// @Description  Retrieves products with stock below threshold
// @Tags         products
// @Produce      json
// @Param        threshold   path      int  true  "Stock threshold"
// @Success      200  {array}  catalog.Product
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/products/low-stock/{threshold} [get]
func (c *CatalogController) GetLowStockProducts(ctx *fiber.Ctx) error {
	threshold, err := strconv.Atoi(ctx.Params("threshold"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid threshold"})
	}

	products, err := c.catalogService.GetLowStockProducts(ctx.UserContext(), threshold)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(products)
}

// AddProduct godoc
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body  models.ProductRequest  true  "Product payload"
// @Success      201  {object}  catalog.Product
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/products [post]
func (c *CatalogController) AddProduct(ctx *fiber.Ctx) error {
	var req models.ProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	product, err := c.catalogService.AddProduct(ctx.UserContext(), catalog.Product{
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		Stock:      req.Stock,
		Category:   req.Category,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidProduct) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct godoc
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "Product ID"
// @Param        product  body  models.ProductRequest  true  "Product payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/products/{id} [put]
func (c *CatalogController) UpdateProduct(ctx *fiber.Ctx) error {
	var req models.ProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	err := c.catalogService.UpdateProduct(ctx.UserContext(), catalog.Product{
		ID:         ctx.Params("id"),
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		Stock:      req.Stock,
		Category:   req.Category,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidProduct) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Product updated successfully"})
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/products/{id} [delete]
func (c *CatalogController) DeleteProduct(ctx *fiber.Ctx) error {
	err := c.catalogService.DeleteProduct(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Product deleted successfully"})
}
