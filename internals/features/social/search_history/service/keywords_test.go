package service

import (
	"testing"

	"socialku_backend/internals/features/social/search_history/model"
)

func rows(keywords ...string) []model.SearchHistoryModel {
	out := make([]model.SearchHistoryModel, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, model.SearchHistoryModel{SearchKeyword: k})
	}
	return out
}

func TestDedupeKeywords(t *testing.T) {
	got := DedupeKeywords(rows("golang", "fiber", "golang", "gorm", "fiber"), 10)
	want := []string{"golang", "fiber", "gorm"}
	if len(got) != len(want) {
		t.Fatalf("DedupeKeywords = %v, mau %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DedupeKeywords = %v, mau %v", got, want)
		}
	}
}

func TestDedupeKeywords_Limit(t *testing.T) {
	got := DedupeKeywords(rows("a1", "b2", "c3", "d4"), 2)
	if len(got) != 2 || got[0] != "a1" || got[1] != "b2" {
		t.Fatalf("DedupeKeywords = %v, mau [a1 b2]", got)
	}
}

func TestDedupeKeywords_Empty(t *testing.T) {
	if got := DedupeKeywords(nil, 5); len(got) != 0 {
		t.Fatalf("DedupeKeywords(nil) = %v, mau kosong", got)
	}
}
