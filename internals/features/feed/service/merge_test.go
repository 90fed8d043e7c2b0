package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func fp(id uuid.UUID, created time.Time, phrases ...string) FeedPost {
	return FeedPost{PostID: id, CreatedAt: created, TopPhrases: phrases}
}

func TestMergeCandidates_FirstOccurrenceWins(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	merged := MergeCandidates(
		[]FeedPost{fp(a, now, "dari-interaksi"), fp(b, now)},
		[]FeedPost{fp(a, now, "dari-pencarian"), fp(c, now)},
	)

	if len(merged) != 3 {
		t.Fatalf("len = %d, mau 3", len(merged))
	}
	seen := make(map[uuid.UUID]int)
	for _, p := range merged {
		seen[p.PostID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("post %s muncul %d kali", id, n)
		}
	}
	// anotasi dari sumber pertama yang dipertahankan
	if merged[0].PostID != a || len(merged[0].TopPhrases) == 0 || merged[0].TopPhrases[0] != "dari-interaksi" {
		t.Fatalf("kemunculan pertama tidak dipertahankan: %+v", merged[0])
	}
}

func TestMergeCandidates_Empty(t *testing.T) {
	merged := MergeCandidates([]FeedPost{}, nil)
	if len(merged) != 0 {
		t.Fatalf("len = %d, mau 0", len(merged))
	}
}

func TestSortByRecency(t *testing.T) {
	now := time.Now()
	old := fp(uuid.New(), now.Add(-time.Hour))
	mid := fp(uuid.New(), now.Add(-time.Minute))
	new1 := fp(uuid.New(), now)

	posts := []FeedPost{old, new1, mid}
	SortByRecency(posts)

	if posts[0].PostID != new1.PostID || posts[1].PostID != mid.PostID || posts[2].PostID != old.PostID {
		t.Fatalf("urutan salah: %+v", posts)
	}
}

func TestSortByRecency_StableOnTies(t *testing.T) {
	now := time.Now()
	a := fp(uuid.New(), now)
	b := fp(uuid.New(), now)

	posts := []FeedPost{a, b}
	SortByRecency(posts)

	if posts[0].PostID != a.PostID || posts[1].PostID != b.PostID {
		t.Fatal("urutan insertion berubah saat timestamp seri")
	}
}

func TestPaginateCandidates(t *testing.T) {
	now := time.Now()
	posts := make([]FeedPost, 0, 5)
	for i := 0; i < 5; i++ {
		posts = append(posts, fp(uuid.New(), now))
	}

	tests := []struct {
		name       string
		page       int
		limit      int
		wantLen    int
		wantPages  int
		wantCurPage int
	}{
		{"halaman pertama", 1, 2, 2, 3, 1},
		{"halaman terakhir sisa", 3, 2, 1, 3, 3},
		{"out of range kosong", 9, 2, 0, 3, 9},
		{"limit default saat nol", 1, 0, 5, 1, 1},
		{"page default saat nol", 0, 2, 2, 3, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PaginateCandidates(posts, tc.page, tc.limit)
			if len(got.PostIDs) != tc.wantLen {
				t.Errorf("len = %d, mau %d", len(got.PostIDs), tc.wantLen)
			}
			if got.TotalPages != tc.wantPages {
				t.Errorf("total pages = %d, mau %d", got.TotalPages, tc.wantPages)
			}
			if got.CurrentPage != tc.wantCurPage {
				t.Errorf("current page = %d, mau %d", got.CurrentPage, tc.wantCurPage)
			}
		})
	}
}

func TestPaginateCandidates_EmptyInput(t *testing.T) {
	got := PaginateCandidates(nil, 1, 20)
	if len(got.PostIDs) != 0 || got.TotalPages != 0 || got.CurrentPage != 1 {
		t.Fatalf("hasil = %+v", got)
	}
}
