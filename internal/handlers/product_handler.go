package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// Bounds accepted for the list limit query parameter.
const (
	minListLimit     = 1
	maxListLimit     = 100
	defaultListLimit = "50"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProduct)

	router.Get("/categories", h.HandleListCategories)
}

// HandleListProducts lists products filtered by the q/category/sort/limit
// query parameters. Reads degrade to an empty list when the store is down,
// so the only failure here is a bad limit.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", defaultListLimit))
	if err != nil || limit < minListLimit || limit > maxListLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "limit must be an integer between 1 and 100",
		})
	}

	query := repositories.ListQuery{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Limit:    int64(limit),
	}
	return c.JSON(h.service.ListProducts(c.Context(), query))
}

// HandleGetProduct retrieves a single product by its id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProduct(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrInvalidProductID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid product id",
			})
		}
		if errors.Is(err, models.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleListCategories lists the distinct product categories.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories(c.Context()))
}

// HandleCreateProduct validates and persists a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.CreateProduct(c.Context(), input)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid product payload",
				"error":   err.Error(),
			})
		}
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}
