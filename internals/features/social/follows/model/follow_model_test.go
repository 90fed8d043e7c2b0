package model

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusDeclined, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusDeclined, false},
		{StatusApproved, StatusApproved, false},
		{StatusDeclined, StatusApproved, false},
		{"", StatusApproved, false},
	}
	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, mau %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(true); got != StatusApproved {
		t.Errorf("profil publik = %q, mau approved", got)
	}
	if got := InitialStatus(false); got != StatusPending {
		t.Errorf("profil privat = %q, mau pending", got)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusDeclined} {
		if !IsValidStatus(s) {
			t.Errorf("%q harus valid", s)
		}
	}
	for _, s := range []string{"", "blocked", "PENDING"} {
		if IsValidStatus(s) {
			t.Errorf("%q harus invalid", s)
		}
	}
}
