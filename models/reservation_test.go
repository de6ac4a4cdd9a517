package models

import "testing"

func TestStatusBadge(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{StatusPending, BadgeWarning},
		{StatusInProgress, BadgeInfo},
		{StatusCompleted, BadgeSuccess},
		{"annulé", BadgeDefault},
		{"", BadgeDefault},
	}

	for _, tc := range cases {
		if got := StatusBadge(tc.status); got != tc.want {
			t.Errorf("StatusBadge(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusCompleted} {
		if !ValidStatus(s) {
			t.Errorf("expected %q valid", s)
		}
	}
	for _, s := range []string{"", "pending", "annulé"} {
		if ValidStatus(s) {
			t.Errorf("expected %q invalid", s)
		}
	}
}
