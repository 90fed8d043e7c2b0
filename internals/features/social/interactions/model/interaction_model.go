package model

import (
	"time"

	"github.com/google/uuid"
)

// Jenis interaksi yang dikenal
const (
	TypeLike    = "like"
	TypeDislike = "dislike"
	TypeView    = "view"
)

// InteractionModel: satu baris per (user, target) untuk like/dislike;
// view bebas berulang. Keunikan dijaga partial unique index:
//
//	CREATE UNIQUE INDEX uq_interactions_user_post ON interactions
//	  (interaction_user_id, interaction_post_id)
//	  WHERE interaction_type <> 'view' AND interaction_post_id IS NOT NULL;
//	CREATE UNIQUE INDEX uq_interactions_user_comment ON interactions
//	  (interaction_user_id, interaction_comment_id)
//	  WHERE interaction_type <> 'view' AND interaction_comment_id IS NOT NULL;
type InteractionModel struct {
	InteractionID     uuid.UUID `gorm:"column:interaction_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"interaction_id"`
	InteractionUserID uuid.UUID `gorm:"column:interaction_user_id;type:uuid;not null;index" json:"interaction_user_id"`

	// tepat satu dari post/comment yang terisi
	InteractionPostID    *uuid.UUID `gorm:"column:interaction_post_id;type:uuid;index" json:"interaction_post_id"`
	InteractionCommentID *uuid.UUID `gorm:"column:interaction_comment_id;type:uuid;index" json:"interaction_comment_id"`

	// pemilik target (author post/comment), untuk notifikasi & query kepemilikan
	InteractionOwnerID uuid.UUID `gorm:"column:interaction_owner_id;type:uuid;not null" json:"interaction_owner_id"`

	InteractionType      string    `gorm:"column:interaction_type;type:varchar(10);not null" json:"interaction_type"`
	InteractionCreatedAt time.Time `gorm:"column:interaction_created_at;autoCreateTime" json:"interaction_created_at"`
	InteractionUpdatedAt time.Time `gorm:"column:interaction_updated_at;autoUpdateTime" json:"interaction_updated_at"`
}

func (InteractionModel) TableName() string {
	return "interactions"
}

// IsReaction true untuk like/dislike (bukan view)
func IsReaction(t string) bool {
	return t == TypeLike || t == TypeDislike
}
