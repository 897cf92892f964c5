package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/washlane/washlane-backend/api/controllers"
	"github.com/washlane/washlane-backend/api/middleware"
	"github.com/washlane/washlane-backend/internal/auth"
	"github.com/washlane/washlane-backend/internal/bookings"
	"github.com/washlane/washlane-backend/pkg/auth/session"
	"github.com/washlane/washlane-backend/pkg/config"
	"github.com/washlane/washlane-backend/pkg/enums"
	"github.com/washlane/washlane-backend/pkg/logger"
	"github.com/washlane/washlane-backend/pkg/metrics"
)

type sessionManager interface {
	session.Checker
	Revoke(ctx context.Context, sessionID string) error
}

// Deps carries everything the router needs wired in from main.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              controllers.Pinger
	Redis           controllers.Pinger
	SessionManager  sessionManager
	AuthService     auth.Service
	RegisterService auth.RegisterService
	BookingService  bookings.Service
	Registry        *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App),
	)

	var httpMetrics *metrics.HTTPMetrics
	if deps.Registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(deps.Registry)
		r.Use(middleware.Metrics(httpMetrics))
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": deps.DB,
			"redis":    deps.Redis,
		}))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalSession(cfg.Session, deps.SessionManager, logg))
		r.Get("/", controllers.Home(deps.AuthService, deps.BookingService, logg))
	})

	r.Get("/signup", controllers.SignupForm())
	r.Post("/signup", controllers.Signup(deps.RegisterService, logg))
	r.Get("/login", controllers.LoginForm())
	r.Post("/login", controllers.Login(deps.AuthService, cfg.Session, logg))
	r.Get("/logout", controllers.Logout(deps.SessionManager, cfg.Session, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(cfg.Session, deps.SessionManager, logg))

		r.Get("/book", controllers.BookingForm(enums.BookingKindGeneral))
		r.Post("/book", controllers.CreateBooking(deps.BookingService, enums.BookingKindGeneral, logg))
		r.Get("/book/car-wash", controllers.BookingForm(enums.BookingKindCarWash))
		r.Post("/book/car-wash", controllers.CreateBooking(deps.BookingService, enums.BookingKindCarWash, logg))
	})

	return r
}
