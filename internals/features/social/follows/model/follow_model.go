package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// FollowModel merepresentasikan relasi follower -> following.
// Primary key komposit (follower_id, following_id); satu baris per pasangan.
type FollowModel struct {
	FollowFollowerID  uuid.UUID `gorm:"column:follow_follower_id;type:uuid;primaryKey" json:"follow_follower_id"`
	FollowFollowingID uuid.UUID `gorm:"column:follow_following_id;type:uuid;primaryKey" json:"follow_following_id"`
	FollowStatus      string    `gorm:"column:follow_status;type:varchar(10);not null;default:'pending'" json:"follow_status"`
	FollowCreatedAt   time.Time `gorm:"column:follow_created_at;autoCreateTime" json:"follow_created_at"`
	FollowUpdatedAt   time.Time `gorm:"column:follow_updated_at;autoUpdateTime" json:"follow_updated_at"`
}

func (FollowModel) TableName() string {
	return "follows"
}

// IsValidStatus memeriksa nilai status yang dikenali.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// CanTransition: hanya request pending yang boleh di-approve/decline.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusDeclined
}

// InitialStatus menentukan status awal follow berdasarkan visibilitas profil target.
func InitialStatus(targetPublic bool) string {
	if targetPublic {
		return StatusApproved
	}
	return StatusPending
}
