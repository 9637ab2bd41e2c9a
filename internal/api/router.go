package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/adiyatma/coin-tracker-be/internal/api/handlers"
	"github.com/adiyatma/coin-tracker-be/internal/auth"
	"github.com/adiyatma/coin-tracker-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tokens *auth.TokenService, userService services.UserServiceProvider, coinService services.CoinServiceProvider, trackingService services.TrackingServiceProvider, refresher handlers.CatalogRefresher) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	coinHandler := handlers.NewCoinHandler(coinService, refresher)
	trackingHandler := handlers.NewTrackingHandler(trackingService)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/coins", coinHandler.GetAll)
		r.Post("/coins/refresh", coinHandler.Refresh)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())
			r.Post("/auth/logout", authHandler.Logout)
			r.Route("/tracking", func(r chi.Router) {
				r.Get("/", trackingHandler.GetAll)
				r.Post("/", trackingHandler.Add)
				r.Delete("/{coinID}", trackingHandler.Remove)
			})
		})
	})

	return r
}
