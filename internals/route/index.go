package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "socialku_backend/internals/features/users/auth/route"
	"socialku_backend/internals/middlewares"
	"socialku_backend/internals/route/details"
)

// SetupRoutes mendaftarkan semua route aplikasi.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db, middlewares.LoginRateLimiter())

	details.PublicRoutes(app, db)
	details.UserRoutes(app, db)
}
