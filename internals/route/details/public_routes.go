package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentRoute "socialku_backend/internals/features/social/comments/route"
	feedRoute "socialku_backend/internals/features/feed/route"
)

// PublicRoutes: endpoint yang bisa diakses tanpa login, di-mount di /api/public
func PublicRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api/public")

	feedRoute.FeedPublicRoutes(public, db)
	commentRoute.CommentPublicRoutes(public, db)
}
