package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marthasimmons/airports-endpoint/src/internal/airports"
	"github.com/marthasimmons/airports-endpoint/src/internal/config"
)

// RouterOptions tunes the router.
type RouterOptions struct {
	// DefaultPageSize is used by GET /airports when pageSize is absent.
	DefaultPageSize int
	// AccessLogFormat is the fasttemplate access log line.
	AccessLogFormat string
}

// DefaultRouterOptions mirrors the configuration defaults.
func DefaultRouterOptions() RouterOptions {
	return RouterOptions{
		DefaultPageSize: config.DefaultPageSize,
		AccessLogFormat: config.DefaultAccessLogFormat,
	}
}

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(dir *airports.Directory, opts RouterOptions) (http.Handler, error) {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = config.DefaultPageSize
	}
	if opts.AccessLogFormat == "" {
		opts.AccessLogFormat = config.DefaultAccessLogFormat
	}

	accessLog, err := Logger(opts.AccessLogFormat)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(accessLog)
	r.Use(CORS)
	r.Use(JSONContentType)

	h := NewHandler(dir, opts.DefaultPageSize)

	r.Get("/health", h.CheckHealth)

	r.Route("/airports", func(r chi.Router) {
		r.Get("/", h.ListAirports)
		r.Post("/", h.CreateAirport)
		r.Get("/{icao}", h.GetAirport)
		r.Patch("/{icao}", h.UpdateAirport)
		r.Delete("/{icao}", h.DeleteAirport)
		r.Get("/{icao}/distance/{other}", h.GetDistance)
	})

	return r, nil
}
