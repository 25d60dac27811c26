package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/leadmail/internal/infra/http/middleware"
)

var corsAllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

type RouterConfig struct {
	CORSOrigins []string
	Verifier    *middleware.TokenVerifier

	SendEmail *SendEmailHandler
	TestSmtp  *TestSmtpHandler
	Chat      *ChatHandler
	Tracking  *TrackingHandler
	EmailLogs *EmailLogsHandler
	Health    *HealthHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: corsAllowedHeaders,
		MaxAge:         300,
	}))

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Handle)
	}
	r.Handle("/metrics", promhttp.Handler())

	// Hit by mail clients, never authenticated.
	r.Get("/track-email", cfg.Tracking.TrackOpen)
	r.Get("/track-click", cfg.Tracking.TrackClick)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.Verifier))

		r.Post("/chat-completion", cfg.Chat.Handle)
		r.Post("/send-email", cfg.SendEmail.Handle)
		r.Post("/test-smtp", cfg.TestSmtp.Handle)
		r.Get("/email-logs", cfg.EmailLogs.Handle)
	})

	return r
}
