package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/users/auth/controller"
	authMw "socialku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, loginLimiter fiber.Handler) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", loginLimiter, ctrl.Login)
	auth.Post("/login-google", loginLimiter, ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	// perlu token valid
	auth.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
	auth.Post("/change-password", authMw.AuthMiddleware(db), ctrl.ChangePassword)
}
