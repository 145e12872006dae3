package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/http/handlers"
	"github.com/givehope/givehope/internal/middleware"
)

// Options carries the router's tunables out of the config layer.
type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

// NewRouter wires every route onto a chi mux.
func NewRouter(app *handlers.App, logger zerolog.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		// Public catalog.
		r.Get("/campaigns", app.CampaignsList)
		r.Get("/campaigns/featured", app.CampaignsFeatured)
		r.Get("/campaigns/{id}", app.CampaignsGet)
		r.Get("/categories", app.Categories)

		// Credential endpoints get a tighter rate limit.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
			r.Post("/auth/signup", app.AuthSignup)
			r.Post("/auth/login", app.AuthLogin)
		})

		// Navigation state works for anonymous visitors; an attached session
		// only changes how gated pages resolve.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(app.Sessions))
			r.Get("/nav", app.NavGet)
			r.Post("/nav/navigate", app.NavNavigate)
			r.Post("/nav/modal/open", app.NavModalOpen)
			r.Post("/nav/modal/close", app.NavModalClose)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(app.Sessions))
			r.Post("/auth/logout", app.AuthLogout)
			r.Get("/me", app.Me)
			r.Put("/me", app.MeUpdate)
			r.Get("/me/dashboard", app.Dashboard)
			r.Get("/me/donations", app.MyDonations)
			r.Get("/me/receipts", app.MyReceipts)
			r.With(middleware.RateLimit(opts.RateLimitPerMin, time.Minute)).
				Post("/campaigns/{id}/donations", app.DonationsCreate)
		})
	})

	return r
}
