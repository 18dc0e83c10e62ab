package dashboard

import (
	"strings"

	"boardcafe-backend/internal/models"
)

// NeedsAttention: 재주문이 필요하거나, 누락 부품이 적혀 있거나, 상태가 하인 행
func NeedsAttention(bg models.BranchGame) bool {
	if bg.ReorderNeeded {
		return true
	}
	if bg.MissingParts != nil && strings.TrimSpace(*bg.MissingParts) != "" {
		return true
	}
	return bg.Status == models.StatusPoor
}

type Stats struct {
	Total          int `json:"total"`
	NeedsReorder   int `json:"needs_reorder"`
	MissingParts   int `json:"missing_parts"`
	PoorCondition  int `json:"poor_condition"`
	NeedsAttention int `json:"needs_attention"`
}

func ComputeStats(rows []models.BranchGame) Stats {
	s := Stats{Total: len(rows)}
	for _, bg := range rows {
		if bg.ReorderNeeded {
			s.NeedsReorder++
		}
		if bg.MissingParts != nil && strings.TrimSpace(*bg.MissingParts) != "" {
			s.MissingParts++
		}
		if bg.Status == models.StatusPoor {
			s.PoorCondition++
		}
		if NeedsAttention(bg) {
			s.NeedsAttention++
		}
	}
	return s
}

// Attention: 주의가 필요한 행만 원래 순서대로 추려낸다 (입력은 건드리지 않는다)
func Attention(rows []models.BranchGame) []models.BranchGame {
	out := make([]models.BranchGame, 0, len(rows))
	for _, bg := range rows {
		if NeedsAttention(bg) {
			out = append(out, bg)
		}
	}
	return out
}
