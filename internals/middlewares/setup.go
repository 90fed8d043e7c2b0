package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "socialku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar sesuai urutan:
// recovery dulu supaya panic di middleware lain juga tertangkap.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
