package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devyansh/etransport-api/internal/application/auth"
	"github.com/devyansh/etransport-api/internal/application/stats"
	"github.com/devyansh/etransport-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ChallanUC *usecase.ChallanUseCase
	NoticeUC  *usecase.NoticeUseCase
	StatsUC   *stats.StatsUseCase
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	challans := protected.Group("/challans")
	challanHandler := NewChallanHandler(deps.ChallanUC, deps.NoticeUC)
	statsHandler := NewStatsHandler(deps.StatsUC)

	// Static paths must be registered before /:id so they are not captured
	// as challan ids.
	challans.Get("/dashboard", statsHandler.Dashboard)
	challans.Post("/summary", statsHandler.Summary)
	challans.Get("/pending/count", statsHandler.PendingCount)
	challans.Get("/active/count", statsHandler.ActiveCount)
	challans.Get("/disposed/count", statsHandler.DisposedCount)

	challans.Post("/", challanHandler.Create)
	challans.Get("/", challanHandler.List)
	challans.Get("/:id", challanHandler.GetByID)
	challans.Put("/:id", challanHandler.Update)
	challans.Delete("/:id", challanHandler.Delete)
	challans.Get("/:id/pdf", challanHandler.NoticePDF)
}
