package http

import (
	"net/http"
	"time"

	httpmw "github.com/cwrk-planet/rooms-api/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(httpmw.WithRequestLogger)
	r.Use(httpmw.RequestLogger)
	r.Use(httpmw.Metrics)
	// после логгера и метрик: паника превращается в 500, который они увидят
	r.Use(middlewareChi.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// служебные маршруты без таймаута
	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(ar chi.Router) {
		if cfg.RequestTimeout > 0 {
			ar.Use(middlewareChi.Timeout(cfg.RequestTimeout))
		}

		ar.Get("/", h.Home)
		ar.Get("/rooms", h.ListRooms)
	})

	return r
}
