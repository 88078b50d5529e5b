package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware takes a comma separated origin list (CORS_ALLOW_ORIGINS).
func CorsMiddleware(origins string) fiber.Handler {
	parts := strings.Split(origins, ",")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(cleaned, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID, Content-Disposition",
		AllowCredentials: true,
	})
}
