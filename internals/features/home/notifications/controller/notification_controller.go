package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/home/notifications/model"
	helper "socialku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 📄 Notifikasi saya, terbaru dulu
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userUUID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userUUID).
		Order("notification_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&notifs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.JsonList(c, "Daftar notifikasi", notifs, helper.BuildMeta(total, p))
}

// 🔢 Jumlah belum dibaca
func (ctrl *NotificationController) GetUnreadCount(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var count int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", userUUID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	return helper.JsonOK(c, "Jumlah belum dibaca", fiber.Map{"unread": count})
}

// ✅ Tandai satu notifikasi dibaca
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	notifID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Notification ID tidak valid")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userUUID).
		Update("notification_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Notifikasi dibaca", fiber.Map{"id": notifID})
}

// ✅ Tandai semua dibaca
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", userUUID).
		Update("notification_read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update notifikasi")
	}

	return helper.JsonUpdated(c, "Semua notifikasi dibaca", nil)
}
