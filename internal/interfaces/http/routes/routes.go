package routes

import (
	"github.com/elevateplus/coaching-api/internal/application/auth"
	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/elevateplus/coaching-api/internal/domain/repositories"
	"github.com/elevateplus/coaching-api/internal/infrastructure/cache"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/handlers"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, identity usecases.IdentityProvider, jwtSecret string) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	catalogCache := cache.New()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	kpiRepo := repositories.NewKPIRepository(db)
	coachingRepo := repositories.NewCoachingRepository(db)

	// Use Cases
	userUseCase := usecases.NewUserUseCase(userRepo, identity)
	campaignUseCase := usecases.NewCampaignUseCase(campaignRepo)
	kpiUseCase := usecases.NewKPIUseCase(kpiRepo, campaignRepo, catalogCache)
	scoringUseCase := usecases.NewScoringUseCase(userRepo, coachingRepo, kpiUseCase)
	coachingUseCase := usecases.NewCoachingUseCase(userRepo, coachingRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userUseCase)
	campaignHandler := handlers.NewCampaignHandler(campaignUseCase)
	kpiHandler := handlers.NewKPIHandler(kpiUseCase)
	scoringHandler := handlers.NewScoringHandler(scoringUseCase)
	coachingHandler := handlers.NewCoachingHandler(coachingUseCase)

	// Everything below requires an authenticated identity.
	v1 := app.Group("/api/v1", middleware.Protected(jwtSecret, userRepo))

	// Profile routes (any authenticated account, even pending roles)
	v1.Get("/me", userHandler.GetMe)
	v1.Post("/users/password-reset", userHandler.PasswordReset)

	// User management routes. The admin gate sits on each route rather
	// than on the group: group middleware runs for every path under the
	// prefix, which would also lock non-admins out of reading their own
	// profile below.
	manageUsers := middleware.RequireAction(auth.ActionManageUsers)
	users := v1.Group("/users")
	users.Post("/", manageUsers, userHandler.CreateUser)
	users.Get("/", manageUsers, userHandler.GetUsers)
	users.Put("/:id", manageUsers, userHandler.UpdateUser)

	// Own profile reads are allowed through; the handler checks self vs admin.
	users.Get("/:id", userHandler.GetUser)

	// Campaign routes. Mutations and listings are admin-only; the enabled
	// catalog read serves every role that renders a scoring form.
	manageCampaigns := middleware.RequireAction(auth.ActionManageCampaigns)
	campaigns := v1.Group("/campaigns")
	campaigns.Post("/", manageCampaigns, campaignHandler.CreateCampaign)
	campaigns.Get("/", manageCampaigns, campaignHandler.GetCampaigns)
	campaigns.Put("/:id/kpis/:kpiId", manageCampaigns, kpiHandler.ToggleEnablement)
	campaigns.Get("/:id/enablements", manageCampaigns, kpiHandler.GetEnablements)
	campaigns.Get("/:id/kpis", middleware.RequireAction(auth.ActionViewKPICatalog), kpiHandler.GetCampaignKPIs)

	// KPI catalog routes
	v1.Post("/kpis", middleware.RequireAction(auth.ActionManageKPIs), kpiHandler.CreateKPI)
	v1.Get("/kpis", middleware.RequireAction(auth.ActionViewKPICatalog), kpiHandler.GetKPIs)

	// Team roster (managers and above)
	v1.Get("/team", middleware.RequireAction(auth.ActionViewTeam), coachingHandler.GetTeam)

	// Scoring routes. Agents may read their own scorecard; the usecase
	// narrows the read to admins, the assigned manager and the agent.
	agents := v1.Group("/agents")
	agents.Get("/:id/scorecard", middleware.RequireAction(auth.ActionViewAgentData), scoringHandler.GetScorecard)
	agents.Post("/:id/scores", middleware.RequireAction(auth.ActionSubmitScores), scoringHandler.SubmitScores)

	// History routes; the usecase limits access to admins, the agent's
	// manager, and the agent themself.
	agents.Get("/:id/coaching-logs", middleware.RequireAction(auth.ActionViewAgentData), coachingHandler.GetCoachingLogs)
	agents.Get("/:id/scores", middleware.RequireAction(auth.ActionViewAgentData), coachingHandler.GetAgentScores)
	agents.Get("/:id/performance", middleware.RequireAction(auth.ActionViewAgentData), coachingHandler.GetAgentPerformance)
}
