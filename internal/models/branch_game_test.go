package models

import "testing"

func TestGameStatusValid(t *testing.T) {
	cases := []struct {
		status GameStatus
		want   bool
	}{
		{StatusGood, true},
		{StatusFair, true},
		{StatusPoor, true},
		{GameStatus(""), false},
		{GameStatus("최상"), false},
		{GameStatus("good"), false},
	}

	for _, tc := range cases {
		if got := tc.status.Valid(); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}
