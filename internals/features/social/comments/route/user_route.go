package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/comments/controller"
)

func CommentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommentController(db)

	router.Post("/posts/:post_id/comments", ctrl.CreateComment)
	router.Delete("/comments/:id", ctrl.DeleteComment)
}

func CommentPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommentController(db)

	router.Get("/posts/:post_id/comments", ctrl.GetCommentsByPost)
}
