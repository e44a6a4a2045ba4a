package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/youssefhammani/file-rouge-final/internal/api/handlers"
	mw "github.com/youssefhammani/file-rouge-final/internal/api/middleware"
	"github.com/youssefhammani/file-rouge-final/internal/models"
	"github.com/youssefhammani/file-rouge-final/internal/observability/metrics"
	"github.com/youssefhammani/file-rouge-final/internal/repository"
)

type Dependencies struct {
	HMACSecret          []byte
	Users               repository.UserRepository
	AuthHandler         *handlers.AuthHandler
	JobsHandler         *handlers.JobsHandler
	ApplicationsHandler *handlers.ApplicationsHandler
	UsersHandler        *handlers.UsersHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(metrics.HTTPMiddleware)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authn := mw.Auth(dep.HMACSecret, dep.Users)

	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", dep.AuthHandler.Register)
		ar.Post("/login", dep.AuthHandler.Login)
		ar.With(authn).Get("/me", dep.AuthHandler.Me)
	})

	r.Route("/jobs", func(jr chi.Router) {
		// Public routes
		jr.Get("/", dep.JobsHandler.List)
		jr.Get("/{id}", dep.JobsHandler.Get)

		// Company only routes
		jr.Group(func(cr chi.Router) {
			cr.Use(authn)
			cr.Use(mw.RequireRole(models.RoleCompany, models.RoleAdmin))
			cr.Post("/", dep.JobsHandler.Create)
			cr.Put("/{id}", dep.JobsHandler.Update)
			cr.Delete("/{id}", dep.JobsHandler.Delete)
			cr.Get("/company/myjobs", dep.JobsHandler.MyJobs)
		})
	})

	r.Route("/applications", func(ar chi.Router) {
		ar.Use(authn)

		// Candidate routes
		ar.With(mw.RequireRole(models.RoleCandidate)).Post("/jobs/{jobId}/apply", dep.ApplicationsHandler.Apply)
		ar.With(mw.RequireRole(models.RoleCandidate)).Get("/my-applications", dep.ApplicationsHandler.MyApplications)

		// Company routes (admin passes the service-level ownership check)
		ar.With(mw.RequireRole(models.RoleCompany, models.RoleAdmin)).Get("/jobs/{jobId}", dep.ApplicationsHandler.ListForJob)
		ar.With(mw.RequireRole(models.RoleCompany, models.RoleAdmin)).Put("/{id}/status", dep.ApplicationsHandler.UpdateStatus)
	})

	r.Route("/users", func(ur chi.Router) {
		ur.Use(authn)

		ur.Put("/profile", dep.UsersHandler.UpdateProfile)

		// Candidate only routes
		candidate := mw.RequireRole(models.RoleCandidate)
		ur.With(candidate).Post("/jobs/{jobId}/save", dep.UsersHandler.SaveJob)
		ur.With(candidate).Delete("/jobs/{jobId}/unsave", dep.UsersHandler.UnsaveJob)
		ur.With(candidate).Get("/saved-jobs", dep.UsersHandler.SavedJobs)
	})

	return r
}
