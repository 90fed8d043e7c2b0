package dto

import (
	"time"

	"github.com/google/uuid"

	"socialku_backend/internals/features/social/comments/model"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type CommentDTO struct {
	CommentID uuid.UUID `json:"comment_id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCommentDTO(m model.CommentModel) CommentDTO {
	return CommentDTO{
		CommentID: m.CommentID,
		PostID:    m.CommentPostID,
		UserID:    m.CommentUserID,
		Content:   m.CommentContent,
		CreatedAt: m.CommentCreatedAt,
	}
}

func ToCommentDTOs(ms []model.CommentModel) []CommentDTO {
	out := make([]CommentDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCommentDTO(m))
	}
	return out
}
