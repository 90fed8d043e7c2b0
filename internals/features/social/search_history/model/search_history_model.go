package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchHistoryModel: log pencarian append-only, tidak pernah di-update
type SearchHistoryModel struct {
	SearchID        uuid.UUID `gorm:"column:search_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"search_id"`
	SearchUserID    uuid.UUID `gorm:"column:search_user_id;type:uuid;not null;index" json:"search_user_id"`
	SearchKeyword   string    `gorm:"column:search_keyword;type:varchar(255);not null" json:"search_keyword"`
	SearchType      string    `gorm:"column:search_type;type:varchar(20);not null;default:'post'" json:"search_type"`
	SearchCreatedAt time.Time `gorm:"column:search_created_at;autoCreateTime" json:"search_created_at"`
}

func (SearchHistoryModel) TableName() string {
	return "search_histories"
}
