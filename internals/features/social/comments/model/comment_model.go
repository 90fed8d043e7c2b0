package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	CommentID        uuid.UUID      `gorm:"column:comment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"comment_id"`
	CommentPostID    uuid.UUID      `gorm:"column:comment_post_id;type:uuid;not null;index" json:"comment_post_id"`
	CommentUserID    uuid.UUID      `gorm:"column:comment_user_id;type:uuid;not null;index" json:"comment_user_id"`
	CommentContent   string         `gorm:"column:comment_content;type:text;not null" json:"comment_content"`
	CommentCreatedAt time.Time      `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`
	CommentDeletedAt gorm.DeletedAt `gorm:"column:comment_deleted_at;index" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}
