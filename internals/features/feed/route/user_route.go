package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/feed/controller"
)

func FeedUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedController(db)

	feed := router.Group("/feed")
	feed.Get("/", ctrl.GetCombinedFeed)
	feed.Get("/interacted", ctrl.GetInteractedPosts)
	feed.Get("/search-matched", ctrl.GetSearchMatchedPosts)
	feed.Get("/following", ctrl.GetFollowingPosts)
}

func FeedPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedController(db)

	router.Get("/feed/popular", ctrl.GetPopularPosts)
}
