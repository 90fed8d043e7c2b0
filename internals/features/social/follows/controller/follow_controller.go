package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"socialku_backend/internals/features/social/follows/dto"
	"socialku_backend/internals/features/social/follows/model"
	notifService "socialku_backend/internals/features/home/notifications/service"
	helper "socialku_backend/internals/helpers"
)

type FollowController struct {
	DB *gorm.DB
}

func NewFollowController(db *gorm.DB) *FollowController {
	return &FollowController{DB: db}
}

// ✅ Follow user lain.
// Profil publik -> langsung approved, profil privat -> pending.
// Kalau cek profil gagal, request ditolak (bukan dianggap publik).
func (ctrl *FollowController) CreateFollow(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var req dto.CreateFollowRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if req.TargetUserID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Target user wajib diisi")
	}
	if req.TargetUserID == userUUID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa follow diri sendiri")
	}

	var targetPublic bool
	err := ctrl.DB.Table("users_profiles").
		Select("profile_public").
		Where("profile_user_id = ?", req.TargetUserID).
		Scan(&targetPublic).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa profil target")
	}

	var exists int64
	if err := ctrl.DB.Table("users").
		Where("id = ?", req.TargetUserID).
		Count(&exists).Error; err != nil || exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	follow := model.FollowModel{
		FollowFollowerID:  userUUID,
		FollowFollowingID: req.TargetUserID,
		FollowStatus:      model.InitialStatus(targetPublic),
	}

	// Follow ulang pasangan yang sama tidak menumpuk baris baru.
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follow_follower_id"}, {Name: "follow_following_id"}},
		DoNothing: true,
	}).Create(&follow).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat follow")
	}

	if follow.FollowStatus == model.StatusPending {
		notifService.NotifyFollowRequest(ctrl.DB, req.TargetUserID, userUUID)
	} else {
		notifService.NotifyFollowApproved(ctrl.DB, userUUID, req.TargetUserID)
	}

	return helper.JsonCreated(c, "Follow berhasil dibuat", dto.ToFollowDTO(follow))
}

// ✅ Approve request follow yang masuk (hanya pemilik akun target, hanya dari pending)
func (ctrl *FollowController) ApproveFollow(c *fiber.Ctx) error {
	return ctrl.resolveFollow(c, model.StatusApproved)
}

// ✅ Decline request follow yang masuk
func (ctrl *FollowController) DeclineFollow(c *fiber.Ctx) error {
	return ctrl.resolveFollow(c, model.StatusDeclined)
}

func (ctrl *FollowController) resolveFollow(c *fiber.Ctx, newStatus string) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	followerID, err := helper.ParseUUIDParam(c, "follower_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Follower ID tidak valid")
	}

	var follow model.FollowModel
	if err := ctrl.DB.
		Where("follow_follower_id = ? AND follow_following_id = ?", followerID, userUUID).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Request follow tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil follow")
	}

	if !model.CanTransition(follow.FollowStatus, newStatus) {
		return helper.JsonError(c, fiber.StatusConflict, "Request follow sudah diproses")
	}

	if err := ctrl.DB.Model(&follow).
		Update("follow_status", newStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update follow")
	}
	follow.FollowStatus = newStatus

	if newStatus == model.StatusApproved {
		notifService.NotifyFollowApproved(ctrl.DB, followerID, userUUID)
	}

	return helper.JsonUpdated(c, "Request follow diproses", dto.ToFollowDTO(follow))
}

// ✅ Unfollow
func (ctrl *FollowController) Unfollow(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	targetID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	res := ctrl.DB.
		Where("follow_follower_id = ? AND follow_following_id = ?", userUUID, targetID).
		Delete(&model.FollowModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal unfollow")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Follow tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Berhasil unfollow", fiber.Map{"user_id": targetID})
}

// 📄 Daftar follower saya (status approved)
func (ctrl *FollowController) GetMyFollowers(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	return ctrl.listFollows(c, "follow_following_id", userUUID)
}

// 📄 Daftar yang saya follow (status approved)
func (ctrl *FollowController) GetMyFollowing(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	return ctrl.listFollows(c, "follow_follower_id", userUUID)
}

// 📄 Request follow yang masih pending ke saya
func (ctrl *FollowController) GetPendingRequests(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.FollowModel{}).
		Where("follow_following_id = ? AND follow_status = ?", userUUID, model.StatusPending).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung request")
	}

	var follows []model.FollowModel
	if err := ctrl.DB.
		Where("follow_following_id = ? AND follow_status = ?", userUUID, model.StatusPending).
		Order("follow_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&follows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil request")
	}

	return helper.JsonList(c, "Request follow pending", dto.ToFollowDTOs(follows), helper.BuildMeta(total, p))
}

func (ctrl *FollowController) listFollows(c *fiber.Ctx, column string, userID uuid.UUID) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.FollowModel{}).
		Where(column+" = ? AND follow_status = ?", userID, model.StatusApproved).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung follow")
	}

	var follows []model.FollowModel
	if err := ctrl.DB.
		Where(column+" = ? AND follow_status = ?", userID, model.StatusApproved).
		Order("follow_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&follows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil follow")
	}

	return helper.JsonList(c, "Daftar follow", dto.ToFollowDTOs(follows), helper.BuildMeta(total, p))
}
