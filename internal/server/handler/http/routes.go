package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomz197/focuscatcher/internal/middleware"
)

// NewRouter constructs the API router.
//
// Routes:
//
//	POST /api/register        → userHandler.Register
//	POST /api/login           → userHandler.Login
//	POST /api/results         → resultHandler.Upload
//	GET  /api/results/levels  → resultHandler.Summaries
//	GET  /api/results/{login} → resultHandler.UserResults
func NewRouter(
	userHandler *UserHandler,
	resultHandler *ResultHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRecovery(logger))
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Writes must be JSON; reads carry no body.
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.AllowContentType("application/json"))
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Post("/results", resultHandler.Upload)
		})

		r.Get("/results/levels", resultHandler.Summaries)
		r.Get("/results/{login}", resultHandler.UserResults)
	})

	return r
}
