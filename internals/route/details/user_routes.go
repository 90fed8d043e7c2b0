package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatRoute "socialku_backend/internals/features/chats/chat/route"
	feedRoute "socialku_backend/internals/features/feed/route"
	notifRoute "socialku_backend/internals/features/home/notifications/route"
	commentRoute "socialku_backend/internals/features/social/comments/route"
	followRoute "socialku_backend/internals/features/social/follows/route"
	interactionRoute "socialku_backend/internals/features/social/interactions/route"
	postRoute "socialku_backend/internals/features/social/posts/route"
	searchHistoryRoute "socialku_backend/internals/features/social/search_history/route"
	userRoute "socialku_backend/internals/features/users/user/route"
	authMiddleware "socialku_backend/internals/middlewares/auth"
)

// UserRoutes: endpoint yang butuh login, di-mount di /api/u di belakang AuthMiddleware
func UserRoutes(app *fiber.App, db *gorm.DB) {
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(user, db)
	postRoute.PostRoutes(user, db)
	commentRoute.CommentUserRoutes(user, db)
	interactionRoute.InteractionRoutes(user, db)
	followRoute.FollowUserRoutes(user, db)
	searchHistoryRoute.SearchHistoryRoutes(user, db)
	feedRoute.FeedUserRoutes(user, db)
	chatRoute.ChatUserRoutes(user, db)
	notifRoute.NotificationUserRoutes(user, db)
}
