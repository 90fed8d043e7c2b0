package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/users/user/dto"
	"socialku_backend/internals/features/users/user/model"
	helper "socialku_backend/internals/helpers"
)

type UsersProfileController struct {
	DB *gorm.DB
}

func NewUsersProfileController(db *gorm.DB) *UsersProfileController {
	return &UsersProfileController{DB: db}
}

// 📄 Profil milik sendiri (dibuat on-demand kalau belum ada)
func (ctrl *UsersProfileController) GetMyProfile(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var profile model.UsersProfileModel
	err := ctrl.DB.First(&profile, "profile_user_id = ?", userUUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UsersProfileModel{ProfileUserID: userUUID, ProfilePublic: true}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat profil")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "Profil user", dto.ToUsersProfileDTO(profile))
}

// 📄 Profil user lain. Profil privat hanya mengembalikan field publik minimum.
func (ctrl *UsersProfileController) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var profile model.UsersProfileModel
	if err := ctrl.DB.First(&profile, "profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	if !profile.ProfilePublic {
		return helper.JsonOK(c, "Profil privat", fiber.Map{
			"profile_user_id": profile.ProfileUserID,
			"profile_public":  false,
		})
	}

	return helper.JsonOK(c, "Profil user", dto.ToUsersProfileDTO(profile))
}

// 🔄 Update profil sendiri (partial)
func (ctrl *UsersProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var req dto.UpdateUsersProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var profile model.UsersProfileModel
	err := ctrl.DB.First(&profile, "profile_user_id = ?", userUUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UsersProfileModel{ProfileUserID: userUUID, ProfilePublic: true}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	if req.ProfileDisplayName != nil {
		profile.ProfileDisplayName = req.ProfileDisplayName
	}
	if req.ProfileBio != nil {
		profile.ProfileBio = req.ProfileBio
	}
	if req.ProfileAvatarURL != nil {
		profile.ProfileAvatarURL = req.ProfileAvatarURL
	}
	if req.ProfilePublic != nil {
		profile.ProfilePublic = *req.ProfilePublic
	}

	if err := ctrl.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToUsersProfileDTO(profile))
}
