package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/social/search_history/model"
)

// RecentDistinctKeywords ambil maksimal limit keyword unik terbaru milik user.
// Dipakai gatherer feed berbasis riwayat pencarian.
func RecentDistinctKeywords(db *gorm.DB, userID uuid.UUID, limit int) ([]string, error) {
	var rows []model.SearchHistoryModel
	// ambil lebih banyak baris lalu dedupe first-wins supaya urutan "terbaru" terjaga
	if err := db.
		Select("search_keyword", "search_created_at").
		Where("search_user_id = ?", userID).
		Order("search_created_at DESC").
		Limit(limit * 4).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return DedupeKeywords(rows, limit), nil
}

// DedupeKeywords dedupe first-wins (input sudah urut terbaru dulu)
func DedupeKeywords(rows []model.SearchHistoryModel, limit int) []string {
	seen := make(map[string]struct{}, limit)
	keywords := make([]string, 0, limit)
	for _, r := range rows {
		if _, ok := seen[r.SearchKeyword]; ok {
			continue
		}
		seen[r.SearchKeyword] = struct{}{}
		keywords = append(keywords, r.SearchKeyword)
		if len(keywords) >= limit {
			break
		}
	}
	return keywords
}
