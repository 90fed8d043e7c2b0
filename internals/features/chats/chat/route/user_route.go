package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/chats/chat/controller"
)

func ChatUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChatController(db)

	chat := router.Group("/chats")
	chat.Post("/", ctrl.OpenConversation)
	chat.Get("/", ctrl.GetMyConversations)
	chat.Post("/:chat_id/messages", ctrl.SendMessage)
	chat.Get("/:chat_id/messages", ctrl.GetMessages)
}
