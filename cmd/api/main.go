package main

import (
	"log"
	"os"
	"time"

	"github.com/elevateplus/coaching-api/internal/infrastructure/database"
	"github.com/elevateplus/coaching-api/internal/infrastructure/identity"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/middleware"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Identity provider (owns credentials and password recovery)
	projectRef := os.Getenv("SUPABASE_PROJECT_REF")
	serviceKey := os.Getenv("SUPABASE_SERVICE_KEY")
	jwtSecret := os.Getenv("SUPABASE_JWT_SECRET")
	if projectRef == "" || serviceKey == "" || jwtSecret == "" {
		log.Fatal("❌ SUPABASE_PROJECT_REF, SUPABASE_SERVICE_KEY and SUPABASE_JWT_SECRET must be set")
	}
	provider := identity.NewSupabaseProvider(projectRef, serviceKey)

	// Configure Fiber
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024, // 1MB; scoring payloads are small
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, provider, jwtSecret)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Coaching API is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
