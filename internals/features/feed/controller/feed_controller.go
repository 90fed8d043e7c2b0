package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/feed/service"
	helper "socialku_backend/internals/helpers"
)

type FeedController struct {
	Service *service.FeedService
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{Service: service.NewFeedService(db)}
}

// 📄 Combined feed user yang sedang login
func (ctrl *FeedController) GetCombinedFeed(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	p := helper.ParseFiber(c, helper.FeedOpts)

	page, err := ctrl.Service.CombinedFeed(userUUID, p.Page, p.PerPage)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membangun feed")
	}
	return helper.JsonOK(c, "Feed gabungan", page)
}

// 📄 Kandidat dari interaksi user
func (ctrl *FeedController) GetInteractedPosts(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	posts, err := ctrl.Service.InteractedPosts(userUUID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kandidat interaksi")
	}
	return helper.JsonOK(c, "Kandidat dari interaksi", posts)
}

// 📄 Kandidat dari riwayat pencarian
func (ctrl *FeedController) GetSearchMatchedPosts(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	posts, err := ctrl.Service.SearchMatchedPosts(userUUID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kandidat pencarian")
	}
	return helper.JsonOK(c, "Kandidat dari riwayat pencarian", posts)
}

// 📄 Kandidat populer
func (ctrl *FeedController) GetPopularPosts(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	posts, svcErr := ctrl.Service.PopularPosts(limit)
	if svcErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post populer")
	}
	return helper.JsonOK(c, "Post populer", posts)
}

// 📄 Kandidat dari following
func (ctrl *FeedController) GetFollowingPosts(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	posts, err := ctrl.Service.FollowingPosts(userUUID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post following")
	}
	return helper.JsonOK(c, "Post dari following", posts)
}
