package handler

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/service"
)

// GetProduct returns a product with its live rating summary.
//
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} service.ProductDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/products/{id} [get]
func GetProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// CompareProducts compares two to four products given as a JSON array of ids.
//
// @Summary Compare products
// @Tags products
// @Accept json
// @Produce json
// @Param body body []int64 true "product ids"
// @Success 200 {array} service.ProductComparison
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/products/compare [post]
func CompareProducts(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ids []int64
		if err := c.BodyParser(&ids); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be an array of product ids")
		}
		res, err := svc.Compare(c.UserContext(), ids)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
