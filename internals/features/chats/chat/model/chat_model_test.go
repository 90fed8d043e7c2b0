package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestNormalizePair_Deterministic(t *testing.T) {
	x, y := uuid.New(), uuid.New()

	a1, b1 := NormalizePair(x, y)
	a2, b2 := NormalizePair(y, x)

	if a1 != a2 || b1 != b2 {
		t.Fatalf("NormalizePair tidak deterministik: (%s,%s) vs (%s,%s)", a1, b1, a2, b2)
	}
}

func TestNormalizePair_SameUser(t *testing.T) {
	x := uuid.New()
	a, b := NormalizePair(x, x)
	if a != x || b != x {
		t.Fatalf("NormalizePair(x, x) = (%s, %s)", a, b)
	}
}

func TestInvolves(t *testing.T) {
	x, y, z := uuid.New(), uuid.New(), uuid.New()
	chat := ChatModel{ChatUserAID: x, ChatUserBID: y}

	if !chat.Involves(x) || !chat.Involves(y) {
		t.Error("peserta percakapan tidak dikenali")
	}
	if chat.Involves(z) {
		t.Error("user luar dianggap peserta")
	}
}
