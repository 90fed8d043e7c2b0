package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/interactions/controller"
)

func InteractionRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInteractionController(db)

	interactions := user.Group("/interactions")
	interactions.Post("/reaction", ctrl.SubmitReaction) // 👍 like/dislike (upsert)
	interactions.Post("/view", ctrl.RecordView)         // 👁️ view (append)
	interactions.Get("/posts/:post_id/me", ctrl.GetMyReaction)
	interactions.Get("/posts/:post_id/counts", ctrl.GetPostCounts)
	interactions.Delete("/posts/:post_id/reaction", ctrl.RemoveReaction)
}
