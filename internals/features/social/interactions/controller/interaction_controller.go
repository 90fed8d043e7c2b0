package controller

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/interactions/dto"
	"socialku_backend/internals/features/social/interactions/model"
	notifService "socialku_backend/internals/features/home/notifications/service"
	helper "socialku_backend/internals/helpers"
)

var validateInteraction = validator.New()

type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// =====================================================
// 👍 Submit like/dislike (atomic, idempotent, race-safe)
// - Insert kalau belum ada
// - Kalau sudah ada (like↔dislike) → update type di baris yang sama
// - Selalu tepat satu baris reaksi per (user, target)
// =====================================================
func (ctrl *InteractionController) SubmitReaction(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var req dto.SubmitReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateInteraction.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if (req.PostID == nil) == (req.CommentID == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi tepat satu dari post_id atau comment_id")
	}

	var row model.InteractionModel
	var err error
	if req.PostID != nil {
		row, err = ctrl.upsertPostReaction(userUUID, *req.PostID, req.Type)
	} else {
		row, err = ctrl.upsertCommentReaction(userUUID, *req.CommentID, req.Type)
	}
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan reaksi")
	}

	// notifikasi best-effort: gagal kirim tidak menggagalkan request
	if row.InteractionType == model.TypeLike && row.InteractionOwnerID != userUUID {
		notifService.NotifyLike(ctrl.DB, row.InteractionOwnerID, userUUID, row.InteractionPostID, row.InteractionCommentID)
	}

	return helper.JsonOK(c, "Reaksi tersimpan", dto.ToInteractionDTO(row))
}

func (ctrl *InteractionController) upsertPostReaction(userID uuid.UUID, postIDRaw, reaction string) (model.InteractionModel, error) {
	var row model.InteractionModel

	postID, err := uuid.Parse(postIDRaw)
	if err != nil {
		return row, fiber.NewError(fiber.StatusBadRequest, "Post ID tidak valid")
	}

	// pastikan post ada + ambil pemiliknya
	var ownerID sql.NullString
	if err := ctrl.DB.
		Table("posts").
		Select("post_user_id").
		Where("post_id = ? AND post_deleted_at IS NULL", postID).
		Scan(&ownerID).Error; err != nil {
		return row, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa post")
	}
	if !ownerID.Valid {
		return row, fiber.NewError(fiber.StatusNotFound, "Post tidak ditemukan")
	}

	// Atomic upsert via ON CONFLICT partial index (lihat komentar model).
	// Mengganti pola lama delete-lalu-insert yang rawan race.
	raw := `
		INSERT INTO interactions (
			interaction_id,
			interaction_user_id,
			interaction_post_id,
			interaction_owner_id,
			interaction_type
		)
		VALUES (gen_random_uuid(), @user_id, @post_id, @owner_id, @reaction)
		ON CONFLICT (interaction_user_id, interaction_post_id)
			WHERE interaction_type <> 'view' AND interaction_post_id IS NOT NULL
		DO UPDATE SET
			interaction_type = EXCLUDED.interaction_type,
			interaction_updated_at = NOW()
		RETURNING *
	`
	if err := ctrl.DB.
		Raw(raw,
			sql.Named("user_id", userID),
			sql.Named("post_id", postID),
			sql.Named("owner_id", ownerID.String),
			sql.Named("reaction", reaction),
		).
		Scan(&row).Error; err != nil {
		return row, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan reaksi")
	}
	return row, nil
}

func (ctrl *InteractionController) upsertCommentReaction(userID uuid.UUID, commentIDRaw, reaction string) (model.InteractionModel, error) {
	var row model.InteractionModel

	commentID, err := uuid.Parse(commentIDRaw)
	if err != nil {
		return row, fiber.NewError(fiber.StatusBadRequest, "Comment ID tidak valid")
	}

	var ownerID sql.NullString
	if err := ctrl.DB.
		Table("comments").
		Select("comment_user_id").
		Where("comment_id = ?", commentID).
		Scan(&ownerID).Error; err != nil {
		return row, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa komentar")
	}
	if !ownerID.Valid {
		return row, fiber.NewError(fiber.StatusNotFound, "Komentar tidak ditemukan")
	}

	raw := `
		INSERT INTO interactions (
			interaction_id,
			interaction_user_id,
			interaction_comment_id,
			interaction_owner_id,
			interaction_type
		)
		VALUES (gen_random_uuid(), @user_id, @comment_id, @owner_id, @reaction)
		ON CONFLICT (interaction_user_id, interaction_comment_id)
			WHERE interaction_type <> 'view' AND interaction_comment_id IS NOT NULL
		DO UPDATE SET
			interaction_type = EXCLUDED.interaction_type,
			interaction_updated_at = NOW()
		RETURNING *
	`
	if err := ctrl.DB.
		Raw(raw,
			sql.Named("user_id", userID),
			sql.Named("comment_id", commentID),
			sql.Named("owner_id", ownerID.String),
			sql.Named("reaction", reaction),
		).
		Scan(&row).Error; err != nil {
		return row, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan reaksi")
	}
	return row, nil
}

// =====================================================
// ❌ Hapus reaksi (like/dislike) milik sendiri di satu post
// =====================================================
func (ctrl *InteractionController) RemoveReaction(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	postID, err := helper.ParseUUIDParam(c, "post_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Post ID tidak valid")
	}

	if err := ctrl.DB.
		Where("interaction_user_id = ? AND interaction_post_id = ? AND interaction_type <> 'view'", userUUID, postID).
		Delete(&model.InteractionModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus reaksi")
	}

	return helper.JsonDeleted(c, "Reaksi dihapus", fiber.Map{"post_id": postID})
}

// =====================================================
// 👁️ Catat view (boleh berulang, tidak pernah unik)
// =====================================================
func (ctrl *InteractionController) RecordView(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var req dto.RecordViewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateInteraction.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	postID, _ := uuid.Parse(req.PostID)

	var ownerID sql.NullString
	if err := ctrl.DB.
		Table("posts").
		Select("post_user_id").
		Where("post_id = ? AND post_deleted_at IS NULL", postID).
		Scan(&ownerID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa post")
	}
	if !ownerID.Valid {
		return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
	}
	ownerUUID, _ := uuid.Parse(ownerID.String)

	view := model.InteractionModel{
		InteractionUserID:  userUUID,
		InteractionPostID:  &postID,
		InteractionOwnerID: ownerUUID,
		InteractionType:    model.TypeView,
	}
	if err := ctrl.DB.Create(&view).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat view")
	}

	return helper.JsonCreated(c, "View tercatat", dto.ToInteractionDTO(view))
}

// =====================================================
// ✅ Reaksi saya di satu post (view TIDAK dihitung)
// GET /interactions/posts/:post_id/me
// =====================================================
func (ctrl *InteractionController) GetMyReaction(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	postID, err := helper.ParseUUIDParam(c, "post_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Post ID tidak valid")
	}

	var row model.InteractionModel
	err = ctrl.DB.
		Where("interaction_user_id = ? AND interaction_post_id = ? AND interaction_type <> 'view'", userUUID, postID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "Belum ada reaksi", nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa reaksi")
	}

	return helper.JsonOK(c, "Reaksi saya", dto.ToInteractionDTO(row))
}

// =====================================================
// 📊 Jumlah reaksi & view per post
// =====================================================
func (ctrl *InteractionController) GetPostCounts(c *fiber.Ctx) error {
	postID, err := helper.ParseUUIDParam(c, "post_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Post ID tidak valid")
	}

	type countRow struct {
		Type  string `gorm:"column:interaction_type"`
		Total int64  `gorm:"column:total"`
	}
	var rows []countRow
	if err := ctrl.DB.Model(&model.InteractionModel{}).
		Select("interaction_type, COUNT(*) AS total").
		Where("interaction_post_id = ?", postID).
		Group("interaction_type").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung interaksi")
	}

	counts := fiber.Map{"like": int64(0), "dislike": int64(0), "view": int64(0)}
	for _, r := range rows {
		counts[r.Type] = r.Total
	}
	return helper.JsonOK(c, "Jumlah interaksi", counts)
}
