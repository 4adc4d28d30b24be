// Package server assembles the HTTP router: Connect services, health and
// metrics endpoints, and the shared middleware.
package server

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/tastyhub/internal/auth"
	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/metrics"
	"github.com/mmynk/tastyhub/internal/middleware"
	"github.com/mmynk/tastyhub/internal/reservation"
	"github.com/mmynk/tastyhub/internal/service"
	"github.com/mmynk/tastyhub/internal/storage"
)

// Options configures the router.
type Options struct {
	Store         storage.Store
	JWT           *auth.JWTManager
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	AllowedOrigin string

	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// New builds the router serving every TastyHub service.
func New(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	menu := catalog.Default()
	deals := catalog.DefaultDeals()
	locations := catalog.DefaultLocations()
	sessions := service.NewSessions(opts.Store, menu, deals)
	authenticator := auth.NewPasswordAuthenticator(opts.Store).WithCost(cost)

	logging := middleware.LoggingInterceptor(opts.Metrics)
	public := connect.WithInterceptors(logging)
	optional := connect.WithInterceptors(middleware.OptionalAuth(opts.JWT), logging)
	private := connect.WithInterceptors(middleware.RequireAuth(opts.JWT), logging)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", opts.Metrics.Handler())

	r.Mount(service.NewMenuServiceHandler(service.NewMenuService(menu, locations), public))
	r.Mount(service.NewAuthServiceHandler(
		service.NewAuthService(authenticator, opts.JWT, opts.Store, sessions, opts.Logger), optional))
	r.Mount(service.NewDealServiceHandler(service.NewDealService(menu, deals, sessions, opts.Metrics), private))
	r.Mount(service.NewCartServiceHandler(service.NewCartService(menu, opts.Store, sessions, opts.Metrics), private))
	r.Mount(service.NewProfileServiceHandler(service.NewProfileService(opts.Store, menu, locations, sessions), private))
	r.Mount(service.NewReservationServiceHandler(
		service.NewReservationService(reservation.NewService(opts.Store, opts.Store, locations)), private))

	return r
}
