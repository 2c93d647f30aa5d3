package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/service"
)

// Services bundles the business services the routes delegate to.
type Services struct {
	Profile      service.ProfileService
	Subscription service.SubscriptionService
	Product      service.ProductService
	Review       service.ReviewService
	Cart         service.CartService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	products := api.Group("/products")
	products.Post("/compare", CompareProducts(svc.Product))
	products.Get("/:id", GetProduct(svc.Product))
	products.Get("/:id/reviews", ListReviews(svc.Review))
	products.Post("/:id/reviews", middleware.RequireUserID(), CreateReview(svc.Review))

	// Everything under /api/user acts on the gateway-authenticated user.
	user := api.Group("/user", middleware.RequireUserID())
	user.Get("/profile", GetProfile(svc.Profile))
	user.Put("/profile", UpdateProfile(svc.Profile))
	user.Put("/profile/avatar", UploadAvatar(svc.Profile))
	user.Get("/profile/avatar", GetAvatar(svc.Profile))
	user.Post("/subscription/subscribe", Subscribe(svc.Subscription))
	user.Delete("/subscription/cancel", CancelSubscription(svc.Subscription))
	user.Post("/cart/items", AddCartItem(svc.Cart))
	user.Get("/cart", GetCart(svc.Cart))
}
