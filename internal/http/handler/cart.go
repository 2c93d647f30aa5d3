package handler

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/service"
)

// AddCartItemRequest is the body of the add-to-cart endpoint.
type AddCartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// AddCartItem adds a product to the signed-in user's cart and returns the cart.
//
// @Summary Add to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param X-User-Id header int true "authenticated user id"
// @Param body body AddCartItemRequest true "product and quantity"
// @Success 201 {object} service.Cart
// @Failure 404 {object} errorPayload
// @Router /api/user/cart/items [post]
func AddCartItem(svc service.CartService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		var req AddCartItemRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.Add(c.UserContext(), userID, req.ProductID, req.Quantity); err != nil {
			return writeServiceError(c, err)
		}
		cart, err := svc.Get(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cart)
	}
}

// GetCart returns the signed-in user's cart.
func GetCart(svc service.CartService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		cart, err := svc.Get(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cart)
	}
}
