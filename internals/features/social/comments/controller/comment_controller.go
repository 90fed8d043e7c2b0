package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/comments/dto"
	"socialku_backend/internals/features/social/comments/model"
	notifService "socialku_backend/internals/features/home/notifications/service"
	helper "socialku_backend/internals/helpers"
)

var validate = validator.New()

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// ✅ Tambah komentar ke post
func (ctrl *CommentController) CreateComment(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	postID, err := helper.ParseUUIDParam(c, "post_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Post ID tidak valid")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi komentar wajib diisi (maksimal 2000 karakter)")
	}

	var postOwnerID uuid.UUID
	if err := ctrl.DB.Table("posts").
		Select("post_user_id").
		Where("post_id = ? AND post_deleted_at IS NULL", postID).
		Scan(&postOwnerID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa post")
	}
	if postOwnerID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
	}

	comment := model.CommentModel{
		CommentPostID:  postID,
		CommentUserID:  userUUID,
		CommentContent: req.Content,
	}
	if err := ctrl.DB.Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat komentar")
	}

	if postOwnerID != userUUID {
		notifService.NotifyComment(ctrl.DB, postOwnerID, userUUID, postID, comment.CommentID)
	}

	return helper.JsonCreated(c, "Komentar berhasil dibuat", dto.ToCommentDTO(comment))
}

// 📄 Daftar komentar sebuah post, terlama dulu
func (ctrl *CommentController) GetCommentsByPost(c *fiber.Ctx) error {
	postID, err := helper.ParseUUIDParam(c, "post_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Post ID tidak valid")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.CommentModel{}).
		Where("comment_post_id = ?", postID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung komentar")
	}

	var comments []model.CommentModel
	if err := ctrl.DB.
		Where("comment_post_id = ?", postID).
		Order("comment_created_at ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	return helper.JsonList(c, "Daftar komentar", dto.ToCommentDTOs(comments), helper.BuildMeta(total, p))
}

// ✅ Hapus komentar milik sendiri
func (ctrl *CommentController) DeleteComment(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	commentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Comment ID tidak valid")
	}

	res := ctrl.DB.
		Where("comment_id = ? AND comment_user_id = ?", commentID, userUUID).
		Delete(&model.CommentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Komentar berhasil dihapus", fiber.Map{"id": commentID})
}
