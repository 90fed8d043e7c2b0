package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/users/user/dto"
	"socialku_backend/internals/features/users/user/model"
	helper "socialku_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonOK(c, "Data user", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"is_active": user.IsActive,
	})
}

// 🔎 Ringkasan user by id (untuk "populate user info" di sisi klien)
func (ctrl *UserController) GetUserSummary(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.Select("id", "user_name").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var avatar *string
	ctrl.DB.Model(&model.UsersProfileModel{}).
		Select("profile_avatar_url").
		Where("profile_user_id = ?", userID).
		Scan(&avatar)

	return helper.JsonOK(c, "Ringkasan user", dto.ToUserSummaryDTO(user, avatar))
}

// 📦 Batched lookup: sekali panggil untuk banyak user sekaligus.
// Pengganti pola N panggilan HTTP per user terkait.
func (ctrl *UserController) GetUsersByIDs(c *fiber.Ctx) error {
	var req dto.UsersByIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid: "+raw)
		}
		ids = append(ids, parsed)
	}

	type row struct {
		ID        uuid.UUID `gorm:"column:id"`
		UserName  string    `gorm:"column:user_name"`
		AvatarURL *string   `gorm:"column:profile_avatar_url"`
	}

	var rows []row
	if err := ctrl.DB.
		Table("users AS u").
		Select("u.id, u.user_name, up.profile_avatar_url").
		Joins("LEFT JOIN users_profiles up ON up.profile_user_id = u.id AND up.profile_deleted_at IS NULL").
		Where("u.id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	// map id → summary; id yang tidak ketemu memang tidak ada di map (degrade ke id di klien)
	result := make(map[string]dto.UserSummaryDTO, len(rows))
	for _, r := range rows {
		result[r.ID.String()] = dto.UserSummaryDTO{
			ID:        r.ID.String(),
			UserName:  r.UserName,
			AvatarURL: r.AvatarURL,
		}
	}

	return helper.JsonOK(c, "Ringkasan user", result)
}

func (ctrl *UserController) UpdateUserName(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var req struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", userUUID).
		Update("user_name", req.UserName).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update user name")
	}

	return helper.JsonUpdated(c, "Username berhasil diperbarui", fiber.Map{
		"user_name": req.UserName,
	})
}
