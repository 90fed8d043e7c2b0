package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/posts/model"
	searchModel "socialku_backend/internals/features/social/search_history/model"
	helper "socialku_backend/internals/helpers"
)

// 🔍 Cari post by konten (case-insensitive) + catat search history.
// GET /posts/search?q=kata&page=1&per_page=20
func (ctrl *PostController) SearchPosts(c *fiber.Ctx) error {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter q wajib diisi")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	pattern := "%" + strings.ToLower(keyword) + "%"
	base := ctrl.DB.Model(&model.PostModel{}).
		Where("LOWER(post_content) LIKE ?", pattern)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung hasil pencarian")
	}

	var posts []model.PostModel
	if err := base.Session(&gorm.Session{}).
		Order("post_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari post")
	}

	// append-only log; gagal mencatat tidak menggagalkan pencarian
	if userUUID := helper.GetUserUUID(c); userUUID != uuid.Nil {
		entry := searchModel.SearchHistoryModel{
			SearchUserID:  userUUID,
			SearchKeyword: keyword,
			SearchType:    "post",
		}
		if err := ctrl.DB.Create(&entry).Error; err != nil {
			log.Printf("[WARN] Gagal mencatat search history: %v", err)
		}
	}

	return helper.JsonList(c, "Hasil pencarian", ctrl.toDTOs(posts), helper.BuildMeta(total, p))
}
