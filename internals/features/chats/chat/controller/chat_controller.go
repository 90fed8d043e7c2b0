package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"socialku_backend/internals/features/chats/chat/dto"
	"socialku_backend/internals/features/chats/chat/model"
	helper "socialku_backend/internals/helpers"
)

var validate = validator.New()

type ChatController struct {
	DB *gorm.DB
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db}
}

// ✅ Buka percakapan dengan user lain (get-or-create)
func (ctrl *ChatController) OpenConversation(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var req dto.OpenConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if req.TargetUserID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Target user wajib diisi")
	}
	if req.TargetUserID == userUUID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa chat dengan diri sendiri")
	}

	var exists int64
	if err := ctrl.DB.Table("users").
		Where("id = ?", req.TargetUserID).
		Count(&exists).Error; err != nil || exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	a, b := model.NormalizePair(userUUID, req.TargetUserID)
	chat := model.ChatModel{ChatUserAID: a, ChatUserBID: b}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_user_a_id"}, {Name: "chat_user_b_id"}},
		DoNothing: true,
	}).Create(&chat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuka percakapan")
	}

	// Insert yang kena conflict tidak mengembalikan baris lama, ambil ulang.
	if chat.ChatID == uuid.Nil {
		if err := ctrl.DB.
			Where("chat_user_a_id = ? AND chat_user_b_id = ?", a, b).
			First(&chat).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil percakapan")
		}
	}

	return helper.JsonOK(c, "Percakapan dibuka", dto.ToChatDTO(chat, userUUID))
}

// 📄 Daftar percakapan saya
func (ctrl *ChatController) GetMyConversations(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.ChatModel{}).
		Where("chat_user_a_id = ? OR chat_user_b_id = ?", userUUID, userUUID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung percakapan")
	}

	var chats []model.ChatModel
	if err := ctrl.DB.
		Where("chat_user_a_id = ? OR chat_user_b_id = ?", userUUID, userUUID).
		Order("chat_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&chats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil percakapan")
	}

	out := make([]dto.ChatDTO, 0, len(chats))
	for _, ch := range chats {
		out = append(out, dto.ToChatDTO(ch, userUUID))
	}
	return helper.JsonList(c, "Daftar percakapan", out, helper.BuildMeta(total, p))
}

// ✅ Kirim pesan ke percakapan
func (ctrl *ChatController) SendMessage(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	chatID, err := helper.ParseUUIDParam(c, "chat_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chat ID tidak valid")
	}

	chat, err := ctrl.loadOwnedChat(chatID, userUUID)
	if err != nil {
		return chatError(c, err)
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi pesan wajib diisi (maksimal 4000 karakter)")
	}

	msg := model.ChatMessageModel{
		MessageChatID:     chat.ChatID,
		MessageSenderID:   userUUID,
		MessageContent:    req.Content,
		MessageAttachment: req.Attachment,
	}
	if err := ctrl.DB.Create(&msg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	return helper.JsonCreated(c, "Pesan terkirim", dto.ToChatMessageDTO(msg))
}

// 📄 Riwayat pesan, terbaru dulu
func (ctrl *ChatController) GetMessages(c *fiber.Ctx) error {
	userUUID := helper.GetUserUUID(c)
	if userUUID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	chatID, err := helper.ParseUUIDParam(c, "chat_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chat ID tidak valid")
	}

	chat, err := ctrl.loadOwnedChat(chatID, userUUID)
	if err != nil {
		return chatError(c, err)
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.ChatMessageModel{}).
		Where("message_chat_id = ?", chat.ChatID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var msgs []model.ChatMessageModel
	if err := ctrl.DB.
		Where("message_chat_id = ?", chat.ChatID).
		Order("message_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&msgs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	return helper.JsonList(c, "Riwayat pesan", dto.ToChatMessageDTOs(msgs), helper.BuildMeta(total, p))
}

var (
	errChatNotFound  = errors.New("chat tidak ditemukan")
	errChatForbidden = errors.New("bukan peserta percakapan")
)

func chatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errChatNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Percakapan tidak ditemukan")
	case errors.Is(err, errChatForbidden):
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan peserta percakapan ini")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil percakapan")
	}
}

func (ctrl *ChatController) loadOwnedChat(chatID, userID uuid.UUID) (model.ChatModel, error) {
	var chat model.ChatModel
	if err := ctrl.DB.Where("chat_id = ?", chatID).First(&chat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat, errChatNotFound
		}
		return chat, err
	}
	if !chat.Involves(userID) {
		return chat, errChatForbidden
	}
	return chat, nil
}
