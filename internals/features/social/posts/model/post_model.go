package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	UserModel "socialku_backend/internals/features/users/user/model"
)

// PostModel: post immutable setelah dibuat, hanya bisa dihapus (soft delete)
type PostModel struct {
	PostID       uuid.UUID `gorm:"column:post_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"post_id"`
	PostUserID   uuid.UUID `gorm:"column:post_user_id;type:uuid;not null" json:"post_user_id"`
	PostContent  string    `gorm:"column:post_content;type:text;not null" json:"post_content"`
	PostImageURL *string   `gorm:"column:post_image_url;type:text" json:"post_image_url"`

	// geolocation opsional
	PostLat *float64 `gorm:"column:post_lat;type:double precision" json:"post_lat"`
	PostLon *float64 `gorm:"column:post_lon;type:double precision" json:"post_lon"`

	PostCreatedAt time.Time      `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
	PostDeletedAt gorm.DeletedAt `gorm:"column:post_deleted_at;index" json:"-"`

	// Relations
	User *UserModel.UserModel `gorm:"foreignKey:PostUserID;references:ID"`
}

func (PostModel) TableName() string {
	return "posts"
}
