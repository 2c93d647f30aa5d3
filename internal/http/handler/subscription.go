package handler

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/model"
	"storefront/internal/service"
)

// SubscribeRequest is the body of the subscribe endpoint.
type SubscribeRequest struct {
	PlanType string `json:"planType"`
}

// SubscriptionResponse describes the subscription after a subscribe or cancel call.
type SubscriptionResponse struct {
	SubscriptionID int64       `json:"subscriptionId,omitempty"`
	PlanType       model.Plan  `json:"planType,omitempty"`
	StartDate      *model.Date `json:"startDate,omitempty"`
	EndDate        *model.Date `json:"endDate,omitempty"`
	Active         bool        `json:"active"`
	AutoRenew      bool        `json:"autoRenew"`
	Message        string      `json:"message"`
}

// Subscribe activates a premium plan for the signed-in user.
//
// @Summary Subscribe to premium
// @Tags subscription
// @Accept json
// @Produce json
// @Param X-User-Id header int true "authenticated user id"
// @Param body body SubscribeRequest true "MONTHLY or YEARLY"
// @Success 200 {object} SubscriptionResponse
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/user/subscription/subscribe [post]
func Subscribe(svc service.SubscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		var req SubscribeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sub, err := svc.Subscribe(c.UserContext(), userID, req.PlanType)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(SubscriptionResponse{
			SubscriptionID: sub.ID,
			PlanType:       sub.PlanType,
			StartDate:      &sub.StartDate,
			EndDate:        &sub.EndDate,
			Active:         sub.Active,
			AutoRenew:      sub.AutoRenew,
			Message:        service.MsgSubscribed,
		})
	}
}

// CancelSubscription ends the signed-in user's active subscription.
//
// @Summary Cancel premium
// @Tags subscription
// @Produce json
// @Param X-User-Id header int true "authenticated user id"
// @Success 200 {object} SubscriptionResponse
// @Failure 404 {object} errorPayload
// @Router /api/user/subscription/cancel [delete]
func CancelSubscription(svc service.SubscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		if _, err := svc.Cancel(c.UserContext(), userID); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(SubscriptionResponse{Active: false, Message: service.MsgCancelled})
	}
}
