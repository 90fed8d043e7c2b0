package dto

import (
	"time"

	"socialku_backend/internals/features/social/interactions/model"
)

// ============================
// Response DTO
// ============================
type InteractionDTO struct {
	InteractionID        string    `json:"interaction_id"`
	InteractionUserID    string    `json:"interaction_user_id"`
	InteractionPostID    *string   `json:"interaction_post_id,omitempty"`
	InteractionCommentID *string   `json:"interaction_comment_id,omitempty"`
	InteractionOwnerID   string    `json:"interaction_owner_id"`
	InteractionType      string    `json:"interaction_type"`
	InteractionUpdatedAt time.Time `json:"interaction_updated_at"`
}

// ============================
// Request DTO
// ============================

// SubmitReactionRequest untuk like/dislike (bukan view)
type SubmitReactionRequest struct {
	PostID    *string `json:"post_id" validate:"omitempty,uuid"`
	CommentID *string `json:"comment_id" validate:"omitempty,uuid"`
	Type      string  `json:"type" validate:"required,oneof=like dislike"`
}

type RecordViewRequest struct {
	PostID string `json:"post_id" validate:"required,uuid"`
}

// ============================
// Converter
// ============================
func ToInteractionDTO(m model.InteractionModel) InteractionDTO {
	d := InteractionDTO{
		InteractionID:        m.InteractionID.String(),
		InteractionUserID:    m.InteractionUserID.String(),
		InteractionOwnerID:   m.InteractionOwnerID.String(),
		InteractionType:      m.InteractionType,
		InteractionUpdatedAt: m.InteractionUpdatedAt,
	}
	if m.InteractionPostID != nil {
		s := m.InteractionPostID.String()
		d.InteractionPostID = &s
	}
	if m.InteractionCommentID != nil {
		s := m.InteractionCommentID.String()
		d.InteractionCommentID = &s
	}
	return d
}
