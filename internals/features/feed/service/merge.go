package service

import (
	"sort"

	"github.com/google/uuid"
)

// MergeCandidates menggabungkan beberapa sumber kandidat dan membuang duplikat.
// Kemunculan pertama yang menang (anotasi dari sumber pertama dipertahankan).
func MergeCandidates(sources ...[]FeedPost) []FeedPost {
	seen := make(map[uuid.UUID]struct{})
	merged := make([]FeedPost, 0)
	for _, src := range sources {
		for _, p := range src {
			if _, ok := seen[p.PostID]; ok {
				continue
			}
			seen[p.PostID] = struct{}{}
			merged = append(merged, p)
		}
	}
	return merged
}

// SortByRecency mengurutkan kandidat terbaru dulu, stabil untuk timestamp sama.
func SortByRecency(posts []FeedPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

// PaginateCandidates memotong daftar kandidat menjadi satu halaman ID.
// Halaman di luar jangkauan menghasilkan daftar kosong, bukan error.
func PaginateCandidates(posts []FeedPost, page, limit int) FeedPage {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	totalPages := (len(posts) + limit - 1) / limit

	start := (page - 1) * limit
	if start > len(posts) {
		start = len(posts)
	}
	end := start + limit
	if end > len(posts) {
		end = len(posts)
	}

	ids := make([]uuid.UUID, 0, end-start)
	for _, p := range posts[start:end] {
		ids = append(ids, p.PostID)
	}

	return FeedPage{
		PostIDs:     ids,
		CurrentPage: page,
		TotalPages:  totalPages,
	}
}
