package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"socialku_backend/internals/features/chats/chat/model"
)

type OpenConversationRequest struct {
	TargetUserID uuid.UUID `json:"target_user_id" validate:"required"`
}

type SendMessageRequest struct {
	Content    string         `json:"content" validate:"required,min=1,max=4000"`
	Attachment datatypes.JSON `json:"attachment,omitempty"`
}

type ChatDTO struct {
	ChatID    uuid.UUID `json:"chat_id"`
	PeerID    uuid.UUID `json:"peer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToChatDTO menampilkan percakapan dari sudut pandang viewer (lawan bicara saja).
func ToChatDTO(m model.ChatModel, viewer uuid.UUID) ChatDTO {
	peer := m.ChatUserAID
	if peer == viewer {
		peer = m.ChatUserBID
	}
	return ChatDTO{
		ChatID:    m.ChatID,
		PeerID:    peer,
		CreatedAt: m.ChatCreatedAt,
	}
}

type ChatMessageDTO struct {
	MessageID  uuid.UUID      `json:"message_id"`
	ChatID     uuid.UUID      `json:"chat_id"`
	SenderID   uuid.UUID      `json:"sender_id"`
	Content    string         `json:"content"`
	Attachment datatypes.JSON `json:"attachment,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func ToChatMessageDTO(m model.ChatMessageModel) ChatMessageDTO {
	return ChatMessageDTO{
		MessageID:  m.MessageID,
		ChatID:     m.MessageChatID,
		SenderID:   m.MessageSenderID,
		Content:    m.MessageContent,
		Attachment: m.MessageAttachment,
		CreatedAt:  m.MessageCreatedAt,
	}
}

func ToChatMessageDTOs(ms []model.ChatMessageModel) []ChatMessageDTO {
	out := make([]ChatMessageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToChatMessageDTO(m))
	}
	return out
}
