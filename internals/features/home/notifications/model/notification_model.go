package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Tipe notifikasi (enum di sisi kode)
const (
	TypeLike           = 1
	TypeComment        = 2
	TypeFollowRequest  = 3
	TypeFollowApproved = 4
)

type NotificationModel struct {
	NotificationID      uuid.UUID `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID  uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationActorID uuid.UUID `gorm:"column:notification_actor_id;type:uuid;not null" json:"notification_actor_id"`

	NotificationTitle string `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationType  int    `gorm:"column:notification_type;not null" json:"notification_type"`

	NotificationTags pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationData datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data"`

	NotificationRead      bool      `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
