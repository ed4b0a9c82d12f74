package router

import (
	"net/http"

	"proshop/internal/auth"
	"proshop/internal/handler"
	"proshop/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
	tokens auth.TokenManager,
	uploadDir string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(tokens, logger)
	admin := func(h http.HandlerFunc) http.Handler {
		return authed(middleware.RequireAdmin(logger)(h))
	}
	user := func(h http.HandlerFunc) http.Handler {
		return authed(h)
	}

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalogue
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.Handle("POST /api/products/create", admin(productHandler.Create))
	mux.Handle("PUT /api/products/{id}/update", admin(productHandler.Update))
	mux.Handle("DELETE /api/products/{id}/delete", admin(productHandler.Delete))
	mux.Handle("POST /api/products/upload", admin(productHandler.Upload))
	mux.Handle("POST /api/products/{id}/reviews", user(productHandler.CreateReview))

	// Orders
	mux.Handle("POST /api/orders/addOrder", user(orderHandler.Place))
	mux.Handle("GET /api/orders", user(orderHandler.ListMine))
	mux.Handle("GET /api/orders/allOrders", admin(orderHandler.ListAll))
	mux.Handle("GET /api/orders/{id}", user(orderHandler.GetByID))
	mux.Handle("PUT /api/orders/{id}/pay", user(orderHandler.Pay))
	mux.Handle("PUT /api/orders/{id}/deliver", admin(orderHandler.Deliver))
	mux.Handle("DELETE /api/orders/{id}/delete", admin(orderHandler.Delete))

	// Accounts
	mux.HandleFunc("POST /api/users/login", userHandler.Login)
	mux.HandleFunc("POST /api/users/register", userHandler.Register)
	mux.Handle("GET /api/users/profile", user(userHandler.GetProfile))
	mux.Handle("PUT /api/users/profile/update", user(userHandler.UpdateProfile))
	mux.Handle("GET /api/users", admin(userHandler.List))
	mux.Handle("GET /api/users/{id}", admin(userHandler.GetByID))
	mux.Handle("PUT /api/users/{id}/update", admin(userHandler.Update))
	mux.Handle("DELETE /api/users/{id}/delete", admin(userHandler.Delete))

	// Locally stored product images
	mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(uploadDir))))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
