package model

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatModel adalah percakapan 1-1. Pasangan user disimpan ternormalisasi
// (user_a < user_b secara byte order) supaya satu pasangan hanya punya satu baris.
type ChatModel struct {
	ChatID        uuid.UUID `gorm:"column:chat_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chat_id"`
	ChatUserAID   uuid.UUID `gorm:"column:chat_user_a_id;type:uuid;not null;uniqueIndex:idx_chat_pair" json:"chat_user_a_id"`
	ChatUserBID   uuid.UUID `gorm:"column:chat_user_b_id;type:uuid;not null;uniqueIndex:idx_chat_pair" json:"chat_user_b_id"`
	ChatCreatedAt time.Time `gorm:"column:chat_created_at;autoCreateTime" json:"chat_created_at"`
}

func (ChatModel) TableName() string {
	return "chats"
}

// NormalizePair mengurutkan pasangan user secara deterministik.
func NormalizePair(x, y uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(x[:], y[:]) <= 0 {
		return x, y
	}
	return y, x
}

// Involves memeriksa apakah user ikut dalam percakapan ini.
func (m ChatModel) Involves(userID uuid.UUID) bool {
	return m.ChatUserAID == userID || m.ChatUserBID == userID
}

type ChatMessageModel struct {
	MessageID         uuid.UUID      `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"message_id"`
	MessageChatID     uuid.UUID      `gorm:"column:message_chat_id;type:uuid;not null;index" json:"message_chat_id"`
	MessageSenderID   uuid.UUID      `gorm:"column:message_sender_id;type:uuid;not null" json:"message_sender_id"`
	MessageContent    string         `gorm:"column:message_content;type:text;not null" json:"message_content"`
	MessageAttachment datatypes.JSON `gorm:"column:message_attachment" json:"message_attachment,omitempty"`
	MessageCreatedAt  time.Time      `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
