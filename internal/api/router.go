package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rsweeney/sleepaid/docs"
	"github.com/rsweeney/sleepaid/internal/api/handler"
	"github.com/rsweeney/sleepaid/internal/api/middleware"
)

type Router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	sleepLogHandler *handler.SleepLogHandler
	insightsHandler *handler.InsightsHandler
	avatarHandler   *handler.AvatarHandler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	sleepLogHandler *handler.SleepLogHandler,
	insightsHandler *handler.InsightsHandler,
	avatarHandler *handler.AvatarHandler,
) *Router {
	return &Router{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		sleepLogHandler: sleepLogHandler,
		insightsHandler: insightsHandler,
		avatarHandler:   avatarHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
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

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", rt.authHandler.Signup)
			r.Post("/login", rt.authHandler.Login)
		})

		r.Route("/users/{userId}", func(r chi.Router) {
			r.Get("/profile", rt.profileHandler.Get)
			r.Put("/profile", rt.profileHandler.Put)

			r.Route("/sleep-logs", func(r chi.Router) {
				r.Post("/", rt.sleepLogHandler.Create)
				r.Get("/", rt.sleepLogHandler.List)
				r.Get("/export", rt.sleepLogHandler.Export)
			})

			r.Get("/dashboard", rt.insightsHandler.GetDashboard)
			r.Get("/insights", rt.insightsHandler.GetInsights)
			r.Get("/suggestion", rt.insightsHandler.GetSuggestion)
			r.Post("/suggestion/feedback", rt.insightsHandler.PostSuggestionFeedback)

			r.Route("/avatar", func(r chi.Router) {
				r.Put("/", rt.avatarHandler.Put)
				r.Get("/", rt.avatarHandler.Get)
				r.Delete("/", rt.avatarHandler.Delete)
			})
		})
	})

	return r
}
