package inventory

import (
	"testing"
	"time"

	"boardcafe-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 게임을 지점에 추가하면 조건 필드가 기본값으로 채워져야 한다
func TestNewBranchGameSeedsDefaults(t *testing.T) {
	now := time.Date(2025, 4, 18, 14, 30, 0, 0, time.UTC)

	bg := newBranchGame(3, 7, "A-12", now)

	assert.Equal(t, uint(3), bg.BranchID)
	assert.Equal(t, uint(7), bg.GameID)
	assert.Equal(t, "A-12", bg.GameIdentifier)
	assert.Equal(t, models.StatusGood, bg.Status)
	assert.True(t, bg.RulebookExists)
	assert.False(t, bg.ReorderNeeded)
	assert.Nil(t, bg.MissingParts)

	// 점검일은 시각 없이 오늘 날짜
	assert.Equal(t, time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC), bg.LastCheckDate)
}

func TestBuildInspectionSheet(t *testing.T) {
	missing := "역할 카드 분실"
	inspector := "김점검"
	rows := []models.BranchGame{
		{
			ID:             1,
			BranchID:       1,
			GameID:         1,
			Game:           &models.Game{ID: 1, Name: "Pandemic"},
			GameIdentifier: "B-01",
			LastCheckDate:  time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC),
			RulebookExists: false,
			Status:         models.StatusPoor,
			ReorderNeeded:  true,
			MissingParts:   &missing,
			Inspector:      &inspector,
		},
		{
			ID:             2,
			BranchID:       1,
			GameID:         2,
			Game:           &models.Game{ID: 2, Name: "Azul"},
			GameIdentifier: "B-02",
			LastCheckDate:  time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
			RulebookExists: true,
			Status:         models.StatusGood,
		},
	}

	f, err := BuildInspectionSheet(rows)
	require.NoError(t, err)

	// 헤더 행
	got, err := f.GetCellValue(inspectionSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "게임 이름", got)

	// 데이터 행
	name, _ := f.GetCellValue(inspectionSheetName, "A2")
	assert.Equal(t, "Pandemic", name)

	status, _ := f.GetCellValue(inspectionSheetName, "E2")
	assert.Equal(t, "하", status)

	rulebook, _ := f.GetCellValue(inspectionSheetName, "F3")
	assert.Equal(t, "보유", rulebook)

	sheetRows, err := f.GetRows(inspectionSheetName)
	require.NoError(t, err)
	assert.Len(t, sheetRows, 3) // 헤더 + 데이터 2행
}
