package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/search_history/model"
	helper "socialku_backend/internals/helpers"
)

type SearchHistoryController struct {
	DB *gorm.DB
}

func NewSearchHistoryController(db *gorm.DB) *SearchHistoryController {
	return &SearchHistoryController{DB: db}
}

// 📄 Riwayat pencarian sendiri, terbaru dulu
func (ctrl *SearchHistoryController) GetMyHistory(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.SearchHistoryModel{}).
		Where("search_user_id = ?", userUUID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung riwayat")
	}

	var entries []model.SearchHistoryModel
	if err := ctrl.DB.
		Where("search_user_id = ?", userUUID).
		Order("search_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	return helper.JsonList(c, "Riwayat pencarian", entries, helper.BuildMeta(total, p))
}
