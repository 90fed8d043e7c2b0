// Package service membuat notifikasi dari fitur lain (like, comment, follow).
// Semua fungsi best-effort: kegagalan hanya dicatat di log, request utama
// tidak boleh ikut gagal.
package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"socialku_backend/internals/features/home/notifications/model"
)

func NotifyLike(db *gorm.DB, recipient, actor uuid.UUID, postID, commentID *uuid.UUID) {
	data := map[string]any{"actor_id": actor.String()}
	tags := pq.StringArray{"like"}
	if postID != nil {
		data["post_id"] = postID.String()
		tags = append(tags, "post")
	}
	if commentID != nil {
		data["comment_id"] = commentID.String()
		tags = append(tags, "comment")
	}
	create(db, model.NotificationModel{
		NotificationUserID:  recipient,
		NotificationActorID: actor,
		NotificationTitle:   "Seseorang menyukai konten Anda",
		NotificationType:    model.TypeLike,
		NotificationTags:    tags,
		NotificationData:    mustJSON(data),
	})
}

func NotifyComment(db *gorm.DB, recipient, actor uuid.UUID, postID, commentID uuid.UUID) {
	create(db, model.NotificationModel{
		NotificationUserID:  recipient,
		NotificationActorID: actor,
		NotificationTitle:   "Komentar baru di post Anda",
		NotificationType:    model.TypeComment,
		NotificationTags:    pq.StringArray{"comment", "post"},
		NotificationData: mustJSON(map[string]any{
			"actor_id":   actor.String(),
			"post_id":    postID.String(),
			"comment_id": commentID.String(),
		}),
	})
}

func NotifyFollowRequest(db *gorm.DB, recipient, actor uuid.UUID) {
	create(db, model.NotificationModel{
		NotificationUserID:  recipient,
		NotificationActorID: actor,
		NotificationTitle:   "Permintaan follow baru",
		NotificationType:    model.TypeFollowRequest,
		NotificationTags:    pq.StringArray{"follow"},
		NotificationData:    mustJSON(map[string]any{"actor_id": actor.String()}),
	})
}

func NotifyFollowApproved(db *gorm.DB, recipient, actor uuid.UUID) {
	create(db, model.NotificationModel{
		NotificationUserID:  recipient,
		NotificationActorID: actor,
		NotificationTitle:   "Permintaan follow Anda disetujui",
		NotificationType:    model.TypeFollowApproved,
		NotificationTags:    pq.StringArray{"follow"},
		NotificationData:    mustJSON(map[string]any{"actor_id": actor.String()}),
	})
}

func create(db *gorm.DB, n model.NotificationModel) {
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[WARN] Gagal membuat notifikasi (type=%d): %v", n.NotificationType, err)
	}
}

func mustJSON(v map[string]any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("{}")
	}
	return b
}
