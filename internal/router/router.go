package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/simontuck/gdc2025-website-sub001/internal/handler"    // handlers implementing the receipt and notification logic
	"github.com/simontuck/gdc2025-website-sub001/internal/middleware" // middleware for JWT authentication on the admin surface
)

// RegisterRoutes registers routes that do not require authentication or
// rate limiting on the provided Echo instance.  Currently it exposes
// only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the public receipt and notification endpoints
// under /v1, applying any middleware supplied by the caller (in
// practice the Redis token-bucket rate limiter), plus the JWT-guarded
// admin surface for manual confirmation resends.
func RegisterAPI(e *echo.Echo, rh *handler.ReceiptHandler, nh *handler.NotificationHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	// Public endpoints.  The checkout session id works as a capability:
	// the payment processor only hands it to the paying customer, so no
	// additional authentication is applied here.
	g := e.Group("/v1", mw...)
	// Resolve and return the canonical payment receipt.
	g.GET("/receipts", rh.GetReceipt)
	// Resolve a receipt and dispatch its confirmation email.
	g.POST("/notifications/confirmation", nh.SendConfirmation)

	// Admin surface for support staff.  Requires a pre-issued HS256
	// bearer token; used to re-send a confirmation to any recipient.
	admin := e.Group("/v1/admin", middleware.JWTAuth(jwtSecret))
	admin.POST("/notifications/resend", nh.SendConfirmation)
}
