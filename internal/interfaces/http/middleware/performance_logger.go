package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PerformanceLogger measures response times on the hot coaching routes.
func PerformanceLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Routes worth watching: everything a manager hits while scoring.
		monitoredRoutes := []string{
			"/api/v1/agents",
			"/api/v1/team",
		}

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.Printf(
			"[PERFORMANCE] %s %s - %d - Duration: %v",
			c.Method(),
			path,
			c.Response().StatusCode(),
			duration,
		)

		return err
	}
}
