package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/posts/controller"
)

func PostRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPostController(db)

	posts := user.Group("/posts")
	posts.Post("/", ctrl.CreatePost)
	posts.Get("/public", ctrl.GetPublicPosts)
	posts.Get("/search", ctrl.SearchPosts)
	posts.Get("/user/:user_id", ctrl.GetPostsByUser)
	posts.Get("/:id", ctrl.GetPostByID)
	posts.Delete("/:id", ctrl.DeletePost)
}
