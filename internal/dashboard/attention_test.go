package dashboard

import (
	"testing"
	"time"

	"boardcafe-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func row(id uint, status models.GameStatus, reorder bool, missing *string) models.BranchGame {
	return models.BranchGame{
		ID:            id,
		BranchID:      1,
		GameID:        id,
		Status:        status,
		ReorderNeeded: reorder,
		MissingParts:  missing,
		LastCheckDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNeedsAttention(t *testing.T) {
	cases := []struct {
		name string
		bg   models.BranchGame
		want bool
	}{
		{"clean row", row(1, models.StatusGood, false, nil), false},
		{"reorder needed", row(2, models.StatusGood, true, nil), true},
		{"missing parts", row(3, models.StatusFair, false, strPtr("주사위 1개")), true},
		{"whitespace-only missing parts does not count", row(4, models.StatusGood, false, strPtr("  ")), false},
		{"poor condition", row(5, models.StatusPoor, false, nil), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NeedsAttention(tc.bg))
		})
	}
}

func TestComputeStats(t *testing.T) {
	rows := []models.BranchGame{
		row(1, models.StatusGood, false, nil),
		row(2, models.StatusPoor, true, strPtr("카드 3장")),
		row(3, models.StatusFair, false, strPtr("토큰 일부")),
		row(4, models.StatusPoor, false, nil),
	}

	s := ComputeStats(rows)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.NeedsReorder)
	assert.Equal(t, 2, s.MissingParts)
	assert.Equal(t, 2, s.PoorCondition)
	assert.Equal(t, 3, s.NeedsAttention)
}

func TestAttentionKeepsOrderAndInput(t *testing.T) {
	rows := []models.BranchGame{
		row(1, models.StatusGood, false, nil),
		row(2, models.StatusPoor, false, nil),
		row(3, models.StatusGood, true, nil),
	}

	got := Attention(rows)

	assert.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
	assert.Len(t, rows, 3)
}
