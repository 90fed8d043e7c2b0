package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/search_history/controller"
)

func SearchHistoryRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSearchHistoryController(db)

	history := user.Group("/search-history")
	history.Get("/", ctrl.GetMyHistory)
}
