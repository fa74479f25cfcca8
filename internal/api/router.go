package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-journal/docs"
	"github.com/blaisecz/sleep-journal/internal/api/handler"
	"github.com/blaisecz/sleep-journal/internal/api/middleware"
	"github.com/blaisecz/sleep-journal/internal/auth"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	authHandler           *handler.AuthHandler
	sleepRecordHandler    *handler.SleepRecordHandler
	statsHandler          *handler.StatsHandler
	recommendationHandler *handler.RecommendationHandler
	tokens                auth.TokenManager
	logger                *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	sleepRecordHandler *handler.SleepRecordHandler,
	statsHandler *handler.StatsHandler,
	recommendationHandler *handler.RecommendationHandler,
	tokens auth.TokenManager,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:           authHandler,
		sleepRecordHandler:    sleepRecordHandler,
		statsHandler:          statsHandler,
		recommendationHandler: recommendationHandler,
		tokens:                tokens,
		logger:                logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.RequestLogger(rt.logger))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	authenticate := middleware.Authenticate(rt.tokens)

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.Register)
			r.Post("/login", rt.authHandler.Login)
			r.With(authenticate).Get("/session", rt.authHandler.Session)
		})

		// Journal routes are scoped to the authenticated user
		r.Route("/users/{userId}", func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/sleep-records", rt.sleepRecordHandler.Create)
			r.Get("/sleep-records", rt.sleepRecordHandler.List)
			r.Get("/sleep-stats", rt.statsHandler.Get)

			r.Route("/recommendations", func(r chi.Router) {
				r.Post("/", rt.recommendationHandler.Generate)
				r.Get("/latest", rt.recommendationHandler.Latest)
				r.Post("/feedback", rt.recommendationHandler.Feedback)
			})
		})
	})

	return r
}
