package dto

import (
	"time"

	"github.com/google/uuid"

	"socialku_backend/internals/features/social/follows/model"
)

type CreateFollowRequest struct {
	TargetUserID uuid.UUID `json:"target_user_id" validate:"required"`
}

type FollowDTO struct {
	FollowerID  uuid.UUID `json:"follower_id"`
	FollowingID uuid.UUID `json:"following_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToFollowDTO(m model.FollowModel) FollowDTO {
	return FollowDTO{
		FollowerID:  m.FollowFollowerID,
		FollowingID: m.FollowFollowingID,
		Status:      m.FollowStatus,
		CreatedAt:   m.FollowCreatedAt,
	}
}

func ToFollowDTOs(ms []model.FollowModel) []FollowDTO {
	out := make([]FollowDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFollowDTO(m))
	}
	return out
}
