package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/service"
)

// CreateReviewRequest is the body of the review endpoint.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ListReviews pages through a product's reviews, newest first.
//
// @Summary List product reviews
// @Tags reviews
// @Produce json
// @Param id path int true "product id"
// @Param limit query int false "page size (default 10, max 100)"
// @Param offset query int false "offset"
// @Success 200 {object} service.ReviewListResult
// @Router /api/products/{id}/reviews [get]
func ListReviews(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), id, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateReview adds the signed-in user's review of a product.
//
// @Summary Review a product
// @Tags reviews
// @Accept json
// @Produce json
// @Param X-User-Id header int true "authenticated user id"
// @Param id path int true "product id"
// @Param body body CreateReviewRequest true "rating 1..5"
// @Success 201 {object} model.Review
// @Failure 409 {object} errorPayload
// @Router /api/products/{id}/reviews [post]
func CreateReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req CreateReviewRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		r, err := svc.Create(c.UserContext(), id, userID, req.Rating, req.Comment)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}
