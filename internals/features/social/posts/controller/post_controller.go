package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/posts/dto"
	"socialku_backend/internals/features/social/posts/model"
	helper "socialku_backend/internals/helpers"
)

var validatePost = validator.New()

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// ➕ Buat Post
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePost.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// lat & lon harus sepasang
	if (req.PostLat == nil) != (req.PostLon == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "post_lat dan post_lon wajib diisi berpasangan")
	}

	post := model.PostModel{
		PostUserID:   userUUID,
		PostContent:  req.PostContent,
		PostImageURL: req.PostImageURL,
		PostLat:      req.PostLat,
		PostLon:      req.PostLon,
	}

	if err := ctrl.DB.Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat post")
	}

	return helper.JsonCreated(c, "Post berhasil dibuat", dto.ToPostDTO(post, 0, 0))
}

// 📄 Detail post
func (ctrl *PostController) GetPostByID(c *fiber.Ctx) error {
	postID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Post ID tidak valid")
	}

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	likes, dislikes := ctrl.countReactions(post.PostID)
	return helper.JsonOK(c, "Detail post", dto.ToPostDTO(post, likes, dislikes))
}

// 📄 Semua post publik (author dengan profil public), terbaru dulu
func (ctrl *PostController) GetPublicPosts(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	base := ctrl.DB.Model(&model.PostModel{}).
		Joins("JOIN users_profiles up ON up.profile_user_id = posts.post_user_id AND up.profile_deleted_at IS NULL").
		Where("up.profile_public = TRUE")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung post")
	}

	var posts []model.PostModel
	if err := base.Session(&gorm.Session{}).
		Order("posts.post_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	return helper.JsonList(c, "Daftar post publik", ctrl.toDTOs(posts), helper.BuildMeta(total, p))
}

// 📄 Post milik satu user
func (ctrl *PostController) GetPostsByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.PostModel{}).
		Where("post_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung post")
	}

	var posts []model.PostModel
	if err := ctrl.DB.
		Where("post_user_id = ?", userID).
		Order("post_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	return helper.JsonList(c, "Daftar post user", ctrl.toDTOs(posts), helper.BuildMeta(total, p))
}

// 🗑️ Hapus Post (hanya pemilik)
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	postID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Post ID tidak valid")
	}

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus post")
	}
	if post.PostUserID != userUUID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pemilik post")
	}

	if err := ctrl.DB.Delete(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus post")
	}

	return helper.JsonDeleted(c, "Post berhasil dihapus", fiber.Map{"id": postID})
}

/* ===============================
   internal
=================================*/

func (ctrl *PostController) countReactions(postID uuid.UUID) (likes, dislikes int64) {
	ctrl.DB.Table("interactions").
		Where("interaction_post_id = ? AND interaction_type = 'like'", postID).
		Count(&likes)
	ctrl.DB.Table("interactions").
		Where("interaction_post_id = ? AND interaction_type = 'dislike'", postID).
		Count(&dislikes)
	return
}

// toDTOs map post → DTO dengan jumlah reaksi sekali query (bukan per post)
func (ctrl *PostController) toDTOs(posts []model.PostModel) []dto.PostDTO {
	result := make([]dto.PostDTO, 0, len(posts))
	if len(posts) == 0 {
		return result
	}

	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.PostID)
	}

	type reactionRow struct {
		PostID uuid.UUID `gorm:"column:interaction_post_id"`
		Type   string    `gorm:"column:interaction_type"`
		Total  int64     `gorm:"column:total"`
	}
	var rows []reactionRow
	ctrl.DB.Table("interactions").
		Select("interaction_post_id, interaction_type, COUNT(*) AS total").
		Where("interaction_post_id IN ? AND interaction_type IN ('like','dislike')", ids).
		Group("interaction_post_id, interaction_type").
		Scan(&rows)

	likeMap := make(map[uuid.UUID]int64)
	dislikeMap := make(map[uuid.UUID]int64)
	for _, r := range rows {
		if r.Type == "like" {
			likeMap[r.PostID] = r.Total
		} else {
			dislikeMap[r.PostID] = r.Total
		}
	}

	for _, p := range posts {
		result = append(result, dto.ToPostDTO(p, likeMap[p.PostID], dislikeMap[p.PostID]))
	}
	return result
}
