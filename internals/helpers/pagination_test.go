package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseQuery(t *testing.T, target string, opt Options) Params {
	t.Helper()

	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, opt)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestParseFiber(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		opt     Options
		want    Params
	}{
		{"default", "/", DefaultOpts, Params{Page: 1, PerPage: 20}},
		{"eksplisit", "/?page=3&per_page=10", DefaultOpts, Params{Page: 3, PerPage: 10}},
		{"alias limit", "/?page=2&limit=5", DefaultOpts, Params{Page: 2, PerPage: 5}},
		{"page non-angka jatuh ke 1", "/?page=abc", DefaultOpts, Params{Page: 1, PerPage: 20}},
		{"page negatif jatuh ke 1", "/?page=-4", DefaultOpts, Params{Page: 1, PerPage: 20}},
		{"per_page dibatasi max", "/?per_page=9999", FeedOpts, Params{Page: 1, PerPage: 50}},
		{"per_page nol diabaikan", "/?per_page=0", DefaultOpts, Params{Page: 1, PerPage: 20}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseQuery(t, tc.target, tc.opt)
			if got != tc.want {
				t.Errorf("ParseFiber = %+v, mau %+v", got, tc.want)
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 10}
	if p.Limit() != 10 {
		t.Errorf("Limit = %d, mau 10", p.Limit())
	}
	if p.Offset() != 20 {
		t.Errorf("Offset = %d, mau 20", p.Offset())
	}
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		p          Params
		wantPages  int
		wantPrev   bool
		wantNext   bool
	}{
		{"pas habis", 40, Params{Page: 1, PerPage: 20}, 2, false, true},
		{"sisa dibulatkan ke atas", 41, Params{Page: 2, PerPage: 20}, 3, true, true},
		{"kosong", 0, Params{Page: 1, PerPage: 20}, 0, false, false},
		{"halaman terakhir", 41, Params{Page: 3, PerPage: 20}, 3, true, false},
		{"out of range tetap sah", 10, Params{Page: 7, PerPage: 20}, 1, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := BuildMeta(tc.total, tc.p)
			if meta.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, mau %d", meta.TotalPages, tc.wantPages)
			}
			if meta.HasPrev != tc.wantPrev || meta.HasNext != tc.wantNext {
				t.Errorf("HasPrev/HasNext = %v/%v, mau %v/%v", meta.HasPrev, meta.HasNext, tc.wantPrev, tc.wantNext)
			}
			if meta.Total != tc.total {
				t.Errorf("Total = %d, mau %d", meta.Total, tc.total)
			}
		})
	}
}
