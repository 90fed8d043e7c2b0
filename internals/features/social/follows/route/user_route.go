package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/follows/controller"
)

func FollowUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFollowController(db)

	follow := router.Group("/follows")
	follow.Post("/", ctrl.CreateFollow)
	follow.Put("/:follower_id/approve", ctrl.ApproveFollow)
	follow.Put("/:follower_id/decline", ctrl.DeclineFollow)
	follow.Delete("/:user_id", ctrl.Unfollow)
	follow.Get("/followers", ctrl.GetMyFollowers)
	follow.Get("/following", ctrl.GetMyFollowing)
	follow.Get("/requests", ctrl.GetPendingRequests)
}
