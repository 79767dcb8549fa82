package domain

import "testing"

func TestNextStatus(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		total     int
		previous  AuditStatus
		want      AuditStatus
	}{
		{"empty checklist stays pending", 0, 36, StatusPending, StatusPending},
		{"clearing all items resets pending", 0, 36, StatusInProgress, StatusPending},
		{"clearing all items resets override", 0, 36, StatusComplete, StatusPending},
		{"full checklist completes", 36, 36, StatusInProgress, StatusComplete},
		{"full checklist completes from pending", 36, 36, StatusPending, StatusComplete},
		{"first item promotes pending", 1, 36, StatusPending, StatusInProgress},
		{"partial keeps in_progress", 10, 36, StatusInProgress, StatusInProgress},
		{"partial keeps manual complete override", 10, 36, StatusComplete, StatusComplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextStatus(tc.completed, tc.total, tc.previous)
			if got != tc.want {
				t.Fatalf("NextStatus(%d, %d, %s) = %s, want %s",
					tc.completed, tc.total, tc.previous, got, tc.want)
			}
		})
	}
}
