package dto

import (
	"time"

	"socialku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

// UserSummaryDTO dipakai untuk "populate user info" (feed, komentar, chat, dll.)
type UserSummaryDTO struct {
	ID        string  `json:"id"`
	UserName  string  `json:"user_name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type UsersProfileDTO struct {
	ProfileID          string    `json:"profile_id"`
	ProfileUserID      string    `json:"profile_user_id"`
	ProfileDisplayName *string   `json:"profile_display_name"`
	ProfileBio         *string   `json:"profile_bio"`
	ProfileAvatarURL   *string   `json:"profile_avatar_url"`
	ProfilePublic      bool      `json:"profile_public"`
	ProfileCreatedAt   time.Time `json:"profile_created_at"`
	ProfileUpdatedAt   time.Time `json:"profile_updated_at"`
}

// ============================
// Request DTO
// ============================
type UpdateUsersProfileRequest struct {
	ProfileDisplayName *string `json:"profile_display_name" validate:"omitempty,max=100"`
	ProfileBio         *string `json:"profile_bio" validate:"omitempty,max=500"`
	ProfileAvatarURL   *string `json:"profile_avatar_url" validate:"omitempty,url"`
	ProfilePublic      *bool   `json:"profile_public"`
}

type UsersByIDsRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,max=100,dive,uuid"`
}

// ============================
// Converter
// ============================
func ToUsersProfileDTO(m model.UsersProfileModel) UsersProfileDTO {
	return UsersProfileDTO{
		ProfileID:          m.ProfileID.String(),
		ProfileUserID:      m.ProfileUserID.String(),
		ProfileDisplayName: m.ProfileDisplayName,
		ProfileBio:         m.ProfileBio,
		ProfileAvatarURL:   m.ProfileAvatarURL,
		ProfilePublic:      m.ProfilePublic,
		ProfileCreatedAt:   m.ProfileCreatedAt,
		ProfileUpdatedAt:   m.ProfileUpdatedAt,
	}
}

func ToUserSummaryDTO(u model.UserModel, avatar *string) UserSummaryDTO {
	return UserSummaryDTO{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		AvatarURL: avatar,
	}
}
