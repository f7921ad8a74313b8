package routes

import (
	"net/http"

	"github.com/wanderlist/wanderlist/internal/app"
	"github.com/wanderlist/wanderlist/internal/handler"
	"github.com/wanderlist/wanderlist/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.ActivityService, app.Cfg)
	item := handler.NewItemHandler(app.BucketListService, app.ImageService, app.ActivityService)
	dashboard := handler.NewDashboardHandler(app.BucketListService)
	gallery := handler.NewGalleryHandler(app.BucketListService)
	inspiration := handler.NewInspirationHandler(app.InspirationService)
	analytics := handler.NewAnalyticsHandler(app.ActivityService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /api/auth/register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)
	mux.HandleFunc("POST /api/auth/forgot-password", rateLimiter(middleware.RequireGuest(auth.ForgotPassword)))
	mux.HandleFunc("POST /api/auth/reset-password", rateLimiter(middleware.RequireGuest(auth.ResetPassword)))
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(auth.Me))

	// OAuth
	mux.HandleFunc("GET /auth/google", rateLimiter(middleware.RequireGuest(auth.GoogleAuth)))
	mux.HandleFunc("GET /auth/google/callback", rateLimiter(auth.GoogleCallback))
	mux.HandleFunc("GET /auth/github", rateLimiter(middleware.RequireGuest(auth.GitHubAuth)))
	mux.HandleFunc("GET /auth/github/callback", rateLimiter(auth.GitHubCallback))

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Bucket list items
	mux.HandleFunc("GET /api/bucket-list", middleware.RequireAuth(item.List))
	mux.HandleFunc("POST /api/bucket-list", middleware.RequireAuth(item.Create))
	mux.HandleFunc("GET /api/bucket-list/{id}", middleware.RequireAuth(item.Get))
	mux.HandleFunc("PATCH /api/bucket-list/{id}", middleware.RequireAuth(item.Update))
	mux.HandleFunc("DELETE /api/bucket-list/{id}", middleware.RequireAuth(item.Delete))
	mux.HandleFunc("POST /api/bucket-list/{id}/image", middleware.RequireAuth(item.UploadImage))
	mux.HandleFunc("DELETE /api/bucket-list/{id}/image", middleware.RequireAuth(item.DeleteImage))

	// Dashboard views
	mux.HandleFunc("GET /api/achievements", middleware.RequireAuth(dashboard.Achievements))
	mux.HandleFunc("GET /api/stats", middleware.RequireAuth(dashboard.Stats))
	mux.HandleFunc("GET /api/reminders", middleware.RequireAuth(dashboard.Reminders))
	mux.HandleFunc("POST /api/reminders/{id}/dismiss", middleware.RequireAuth(dashboard.DismissReminder))
	mux.HandleFunc("POST /api/reminders/reset", middleware.RequireAuth(dashboard.ResetDismissedReminders))

	// Gallery
	mux.HandleFunc("GET /api/gallery", middleware.RequireAuth(gallery.Gallery))

	// Inspiration
	mux.HandleFunc("GET /api/inspiration", middleware.RequireAuth(inspiration.Sets))
	mux.HandleFunc("GET /api/inspiration/quote", middleware.RequireAuth(inspiration.Quote))
	mux.HandleFunc("GET /api/inspiration/{slug}", middleware.RequireAuth(inspiration.Set))

	// Activity
	mux.HandleFunc("GET /api/activity", middleware.RequireAuth(analytics.RecentActivity))
	mux.HandleFunc("GET /api/activity/stats", middleware.RequireAuth(analytics.UsageStats))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserRepository),
		middleware.ActivityTracking(app.ActivityService),
	)

	return handler
}
