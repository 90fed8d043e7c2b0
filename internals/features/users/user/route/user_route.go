package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/users/user/controller"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	profileCtrl := controller.NewUsersProfileController(db)

	users := user.Group("/users")
	users.Get("/me", userCtrl.Me)
	users.Patch("/me/username", userCtrl.UpdateUserName)
	users.Get("/me/profile", profileCtrl.GetMyProfile)
	users.Patch("/me/profile", profileCtrl.UpdateMyProfile)
	users.Post("/by-ids", userCtrl.GetUsersByIDs) // 📦 batched lookup
	users.Get("/:id/summary", userCtrl.GetUserSummary)
	users.Get("/:user_id/profile", profileCtrl.GetProfileByUserID)
}
