package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/handler"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/middleware"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()

	adminRoutes := r.PathPrefix("/").Subrouter()
	adminRoutes.Use(middleware.AdminAuth)
	adminRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Coding profiles - the fixed paths must register before /{id}
	r.HandleFunc("/coding-profiles", handler.GetCodingProfiles).Methods(http.MethodGet)
	r.HandleFunc("/coding-profiles/contributions", handler.GetCombinedContributions).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/coding-profiles/fetch-stats", handler.FetchPlatformStats).Methods(http.MethodPost)
	r.HandleFunc("/coding-profiles/{id}", handler.GetCodingProfile).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/coding-profiles", handler.CreateCodingProfile).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/coding-profiles/{id}", handler.UpdateCodingProfile).Methods(http.MethodPut, http.MethodPatch)
	adminRoutes.HandleFunc("/coding-profiles/{id}", handler.DeleteCodingProfile).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/coding-profiles/{id}/daily-contribution", handler.SetDailyContribution).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/coding-profiles/{id}/sync-all", handler.SyncProfile).Methods(http.MethodPost)

	// Projects
	r.HandleFunc("/projects", handler.GetProjects).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}", handler.GetProjectById).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/projects", handler.CreateProject).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/projects/{id}", handler.UpdateProject).Methods(http.MethodPut, http.MethodPatch)
	adminRoutes.HandleFunc("/projects/{id}", handler.DeleteProject).Methods(http.MethodDelete)

	// Skills
	r.HandleFunc("/skills", handler.GetSkills).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/skills", handler.CreateSkill).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/skills/{id}", handler.UpdateSkill).Methods(http.MethodPut, http.MethodPatch)
	adminRoutes.HandleFunc("/skills/{id}", handler.DeleteSkill).Methods(http.MethodDelete)

	// Experience timeline
	r.HandleFunc("/experiences", handler.GetExperiences).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/experiences", handler.CreateExperience).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/experiences/{id}", handler.UpdateExperience).Methods(http.MethodPut, http.MethodPatch)
	adminRoutes.HandleFunc("/experiences/{id}", handler.DeleteExperience).Methods(http.MethodDelete)

	// Blog
	r.HandleFunc("/blog", handler.GetBlogPosts).Methods(http.MethodGet)
	r.HandleFunc("/blog/{slug}", handler.GetBlogPostBySlug).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/blog", handler.CreateBlogPost).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/blog/{id}", handler.UpdateBlogPost).Methods(http.MethodPut, http.MethodPatch)
	adminRoutes.HandleFunc("/blog/{id}", handler.DeleteBlogPost).Methods(http.MethodDelete)

	// Contact & newsletter
	r.HandleFunc("/contact", handler.CreateContactMessage).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/contact", handler.GetContactMessages).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/contact/{id}/read", handler.MarkContactMessageRead).Methods(http.MethodPost)
	r.HandleFunc("/newsletter/subscribe", handler.SubscribeNewsletter).Methods(http.MethodPost)

	// Uploads
	adminRoutes.HandleFunc("/uploads/resume", handler.UploadResume).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/uploads/image", handler.UploadImage).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "route not found")
	})

	return r
}
