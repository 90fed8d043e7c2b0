package service

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/features/feed/phrase"
	searchService "socialku_backend/internals/features/social/search_history/service"
)

const (
	// Jumlah keyword riwayat pencarian yang dipakai gatherer search-matched.
	recentKeywordLimit = 50
	// Jumlah top phrase yang dilampirkan di setiap kandidat.
	topPhraseLimit = 5
)

// FeedPost adalah kandidat post hasil salah satu gatherer.
type FeedPost struct {
	PostID     uuid.UUID `json:"post_id"`
	CreatedAt  time.Time `json:"created_at"`
	TopPhrases []string  `json:"top_phrases,omitempty"`
}

type FeedService struct {
	DB *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{DB: db}
}

type feedRow struct {
	PostID        uuid.UUID
	PostContent   string
	PostCreatedAt time.Time
}

func toFeedPosts(rows []feedRow, annotate bool) []FeedPost {
	out := make([]FeedPost, 0, len(rows))
	for _, r := range rows {
		fp := FeedPost{PostID: r.PostID, CreatedAt: r.PostCreatedAt}
		if annotate {
			fp.TopPhrases = phrase.TopPhraseStrings(r.PostContent, phrase.DefaultStopWords, topPhraseLimit)
		}
		out = append(out, fp)
	}
	return out
}

// 📄 Post yang pernah di-interaksi user (like/dislike/view), terbaru dulu.
// Interaksi terhadap komentar (post ref null) tidak ikut.
func (s *FeedService) InteractedPosts(userID uuid.UUID) ([]FeedPost, error) {
	var rows []feedRow
	err := s.DB.Table("posts").
		Select("DISTINCT posts.post_id, posts.post_content, posts.post_created_at").
		Joins("JOIN interactions ON interactions.interaction_post_id = posts.post_id").
		Where("interactions.interaction_owner_id = ?", userID).
		Where("interactions.interaction_post_id IS NOT NULL").
		Where("posts.post_deleted_at IS NULL").
		Order("posts.post_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows, true), nil
}

// 📄 Post yang isinya cocok dengan keyword pencarian terakhir user.
func (s *FeedService) SearchMatchedPosts(userID uuid.UUID) ([]FeedPost, error) {
	keywords, err := searchService.RecentDistinctKeywords(s.DB, userID, recentKeywordLimit)
	if err != nil {
		return nil, err
	}
	if len(keywords) == 0 {
		return []FeedPost{}, nil
	}

	q := s.DB.Table("posts").
		Select("posts.post_id, posts.post_content, posts.post_created_at").
		Where("posts.post_deleted_at IS NULL")

	cond := s.DB
	for _, kw := range keywords {
		cond = cond.Or("LOWER(posts.post_content) LIKE ?", "%"+strings.ToLower(kw)+"%")
	}
	q = q.Where(cond)

	var rows []feedRow
	if err := q.Order("posts.post_created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toFeedPosts(rows, true), nil
}

// 📄 Post terpopuler (jumlah interaksi sepanjang masa), hanya author berprofil publik.
// Seri dipecah dengan recency.
func (s *FeedService) PopularPosts(limit int) ([]FeedPost, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []feedRow
	err := s.DB.Table("posts").
		Select("posts.post_id, posts.post_content, posts.post_created_at, COUNT(interactions.interaction_id) AS interaction_count").
		Joins("LEFT JOIN interactions ON interactions.interaction_post_id = posts.post_id").
		Joins("JOIN users_profiles ON users_profiles.profile_user_id = posts.post_user_id AND users_profiles.profile_deleted_at IS NULL").
		Where("users_profiles.profile_public = TRUE").
		Where("posts.post_deleted_at IS NULL").
		Group("posts.post_id, posts.post_content, posts.post_created_at").
		Order("interaction_count DESC, posts.post_created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows, false), nil
}

// 📄 Post dari user yang di-follow (status approved), terbaru dulu.
// User yang tidak follow siapa pun dapat slice kosong, bukan error.
func (s *FeedService) FollowingPosts(userID uuid.UUID) ([]FeedPost, error) {
	var rows []feedRow
	err := s.DB.Table("posts").
		Select("posts.post_id, posts.post_content, posts.post_created_at").
		Where("posts.post_user_id IN (?)",
			s.DB.Table("follows").
				Select("follow_following_id").
				Where("follow_follower_id = ? AND follow_status = ?", userID, "approved"),
		).
		Where("posts.post_deleted_at IS NULL").
		Order("posts.post_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows, false), nil
}

// 📄 Semua post publik, terbaru dulu (sumber baseline untuk combined feed).
func (s *FeedService) publicPosts() ([]FeedPost, error) {
	var rows []feedRow
	err := s.DB.Table("posts").
		Select("posts.post_id, posts.post_content, posts.post_created_at").
		Joins("JOIN users_profiles ON users_profiles.profile_user_id = posts.post_user_id AND users_profiles.profile_deleted_at IS NULL").
		Where("users_profiles.profile_public = TRUE").
		Where("posts.post_deleted_at IS NULL").
		Order("posts.post_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows, false), nil
}

// FeedPage adalah satu halaman hasil combined feed.
type FeedPage struct {
	PostIDs     []uuid.UUID `json:"post_ids"`
	CurrentPage int         `json:"current_page"`
	TotalPages  int         `json:"total_pages"`
}

// CombinedFeed menggabungkan kandidat personal (interaksi + riwayat pencarian),
// kandidat populer, dan semua post publik. Satu sumber gagal tidak membatalkan
// sumber lain; hasilnya di-dedupe, diurutkan terbaru dulu, lalu dipaginasi.
func (s *FeedService) CombinedFeed(userID uuid.UUID, page, limit int) (FeedPage, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	gatherers := []struct {
		name string
		fn   func() ([]FeedPost, error)
	}{
		{"interacted", func() ([]FeedPost, error) { return s.InteractedPosts(userID) }},
		{"search_matched", func() ([]FeedPost, error) { return s.SearchMatchedPosts(userID) }},
		{"popular", func() ([]FeedPost, error) { return s.PopularPosts(limit * 2) }},
		{"public", s.publicPosts},
	}

	sources := make([][]FeedPost, 0, len(gatherers))
	for _, g := range gatherers {
		posts, err := g.fn()
		if err != nil {
			log.Printf("[WARN] feed gatherer %s gagal: %v", g.name, err)
			continue
		}
		sources = append(sources, posts)
	}

	merged := MergeCandidates(sources...)
	SortByRecency(merged)
	return PaginateCandidates(merged, page, limit), nil
}
