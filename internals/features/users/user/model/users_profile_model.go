package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsersProfileModel struct {
	ProfileID     uuid.UUID `gorm:"column:profile_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"profile_id"`
	ProfileUserID uuid.UUID `gorm:"column:profile_user_id;type:uuid;not null;unique" json:"profile_user_id"`

	ProfileDisplayName *string `gorm:"column:profile_display_name;type:varchar(100)" json:"profile_display_name"`
	ProfileBio         *string `gorm:"column:profile_bio;type:text" json:"profile_bio"`
	ProfileAvatarURL   *string `gorm:"column:profile_avatar_url;type:text" json:"profile_avatar_url"`

	// profile_public menentukan: follow langsung approved & post ikut feed publik
	ProfilePublic bool `gorm:"column:profile_public;not null;default:true" json:"profile_public"`

	ProfileCreatedAt time.Time      `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time      `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
	ProfileDeletedAt gorm.DeletedAt `gorm:"column:profile_deleted_at;index" json:"-"`

	// Relations
	User *UserModel `gorm:"foreignKey:ProfileUserID;references:ID"`
}

func (UsersProfileModel) TableName() string {
	return "users_profiles"
}
