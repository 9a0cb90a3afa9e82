package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/badgerpadel/community-backend/api/controllers"
	"github.com/badgerpadel/community-backend/api/middleware"
	"github.com/badgerpadel/community-backend/internal/applications"
	"github.com/badgerpadel/community-backend/internal/auth"
	"github.com/badgerpadel/community-backend/internal/memberships"
	"github.com/badgerpadel/community-backend/internal/partners"
	"github.com/badgerpadel/community-backend/pkg/auth/session"
	"github.com/badgerpadel/community-backend/pkg/config"
	"github.com/badgerpadel/community-backend/pkg/enums"
	"github.com/badgerpadel/community-backend/pkg/logger"
	"github.com/badgerpadel/community-backend/pkg/metrics"
	"github.com/badgerpadel/community-backend/pkg/redis"
)

// Params collects everything the HTTP surface depends on.
type Params struct {
	Config             *config.Config
	Logger             *logger.Logger
	Metrics            *metrics.HTTPMetrics
	Redis              *redis.Client
	Sessions           session.AccessSessionChecker
	AuthService        auth.Service
	RegisterService    auth.RegisterService
	PartnerService     partners.Service
	ApplicationService applications.Service
	MembershipService  memberships.Service
	HealthDeps         []controllers.Dependency
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.Metrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.LoginPolicy(cfg.AuthRateLimit)
	registerPolicy := middleware.RegisterPolicy(cfg.AuthRateLimit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.HealthDeps...))
	})

	if p.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", p.Metrics.Handler())
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).Post("/register", controllers.AuthRegister(p.RegisterService, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, p.Sessions, logg)).Post("/logout", controllers.AuthLogout(p.AuthService, logg))
	})

	r.Route("/api/admin/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.AdminAuthLogin(p.AuthService, logg))
	})

	// Public directory and application intake.
	r.Route("/api/partners", func(r chi.Router) {
		r.Get("/", controllers.PartnersList(p.PartnerService, logg))
		r.Get("/{partnerID}", controllers.PartnerGet(p.PartnerService, logg))
	})
	r.Post("/api/partner-applications", controllers.ApplicationSubmit(p.ApplicationService, logg))

	// Member surface.
	r.Route("/api/membership", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
		r.Get("/card", controllers.MembershipCard(p.MembershipService, logg))
		r.Post("/photo", controllers.MembershipPhotoUpload(p.MembershipService, cfg.GCS.MaxUploadMB, logg))
	})

	// Admin surface.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
		r.Use(middleware.RequireRole(string(enums.MemberRoleAdmin), logg))

		r.Route("/applications", func(r chi.Router) {
			r.Get("/", controllers.AdminApplicationsList(p.ApplicationService, logg))
			r.Get("/{applicationID}", controllers.AdminApplicationGet(p.ApplicationService, logg))
			r.Post("/{applicationID}/approve", controllers.AdminApplicationApprove(p.ApplicationService, logg))
			r.Post("/{applicationID}/reject", controllers.AdminApplicationReject(p.ApplicationService, logg))
		})

		r.Route("/partners", func(r chi.Router) {
			r.Get("/", controllers.AdminPartnersList(p.PartnerService, logg))
			r.Post("/", controllers.AdminPartnerCreate(p.PartnerService, logg))
			r.Patch("/{partnerID}", controllers.AdminPartnerUpdate(p.PartnerService, logg))
			r.Post("/{partnerID}/active", controllers.AdminPartnerSetActive(p.PartnerService, logg))
			r.Delete("/{partnerID}", controllers.AdminPartnerDelete(p.PartnerService, logg))
			r.Post("/{partnerID}/image", controllers.AdminPartnerUploadImage(p.PartnerService, cfg.GCS.MaxUploadMB, logg))
		})
	})

	return r
}
