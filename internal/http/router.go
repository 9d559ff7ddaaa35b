package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Sanketkadam3921/financial-dashboard/internal/auth"
	authHandler "github.com/Sanketkadam3921/financial-dashboard/internal/http/auth"
	"github.com/Sanketkadam3921/financial-dashboard/internal/http/respond"
	txHandler "github.com/Sanketkadam3921/financial-dashboard/internal/http/transaction"
)

func New(
	authV1 *authHandler.Handler,
	transactionsV1 *txHandler.Handler,
	tokens *auth.TokenManager,
	corsOrigin string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"message": "Financial Analytics API is running"})
	})

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(tokens.Middleware)
			transactionsV1.Routes(r)
		})
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusNotFound, "Route not found")
	})

	return router
}
