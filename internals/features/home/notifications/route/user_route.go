package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialku_backend/internals/features/home/notifications/controller"
)

// NotificationUserRoutes: semua butuh login
func NotificationUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notif := router.Group("/notifications")
	notif.Get("/", ctrl.GetMyNotifications)
	notif.Get("/unread-count", ctrl.GetUnreadCount)
	notif.Put("/:id/read", ctrl.MarkRead)
	notif.Put("/read-all", ctrl.MarkAllRead)
}
