package listview

import (
	"testing"
	"time"

	"boardcafe-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func statusPtr(s models.GameStatus) *models.GameStatus { return &s }

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func entry(id uint, name, identifier string, status models.GameStatus, checked time.Time, rulebook, reorder bool, missing *string) models.BranchGame {
	return models.BranchGame{
		ID:             id,
		BranchID:       1,
		GameID:         id,
		Game:           &models.Game{ID: id, Name: name},
		GameIdentifier: identifier,
		LastCheckDate:  checked,
		RulebookExists: rulebook,
		Status:         status,
		ReorderNeeded:  reorder,
		MissingParts:   missing,
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleRows() []models.BranchGame {
	return []models.BranchGame{
		entry(1, "Catan", "A-01", models.StatusGood, day("2024-04-15"), true, false, nil),
		entry(2, "Ticket to Ride", "A-02", models.StatusFair, day("2024-04-10"), true, false, strPtr("파란 기차 2개 분실")),
		entry(3, "Pandemic", "B-01", models.StatusPoor, day("2024-03-28"), false, true, strPtr("역할 카드 분실")),
		entry(4, "Azul", "B-02", models.StatusGood, day("2024-04-05"), true, false, nil),
		entry(5, "스플렌더", "C-01", models.StatusFair, day("2024-04-18"), true, false, nil),
	}
}

func ids(rows []models.BranchGame) []uint {
	out := make([]uint, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestFiltersCombineWithAND(t *testing.T) {
	rows := sampleRows()

	cases := []struct {
		name    string
		filters Filters
		want    []uint
	}{
		{
			name:    "no filters returns everything",
			filters: Filters{},
			want:    []uint{1, 2, 3, 4, 5},
		},
		{
			name:    "name substring is case-insensitive",
			filters: Filters{Name: "cAt"},
			want:    []uint{1},
		},
		{
			name:    "identifier substring is case-insensitive",
			filters: Filters{Identifier: "b-"},
			want:    []uint{3, 4},
		},
		{
			name:    "rulebook and reorder together",
			filters: Filters{Rulebook: boolPtr(false), Reorder: boolPtr(true)},
			want:    []uint{3},
		},
		{
			name:    "status plus date range narrows to the intersection",
			filters: Filters{Status: statusPtr(models.StatusFair), CheckedFrom: datePtr("2024-04-11")},
			want:    []uint{5},
		},
		{
			name:    "all predicates at once",
			filters: Filters{Name: "a", Identifier: "a-", Status: statusPtr(models.StatusGood), Rulebook: boolPtr(true), Reorder: boolPtr(false), CheckedFrom: datePtr("2024-04-01"), CheckedTo: datePtr("2024-04-30")},
			want:    []uint{1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(rows, tc.filters, SortState{})
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

// 조합된 결과는 항상 "각 조건을 따로 적용한 결과들의 교집합"이어야 한다.
func TestCombinedFilterEqualsIntersection(t *testing.T) {
	rows := sampleRows()

	combined := Filters{
		Name:      "a",
		Rulebook:  boolPtr(true),
		CheckedTo: datePtr("2024-04-15"),
	}

	single := []Filters{
		{Name: "a"},
		{Rulebook: boolPtr(true)},
		{CheckedTo: datePtr("2024-04-15")},
	}

	inIntersection := func(bg models.BranchGame) bool {
		for _, f := range single {
			if !f.Match(bg) {
				return false
			}
		}
		return true
	}

	got := Apply(rows, combined, SortState{})

	want := make([]uint, 0)
	for _, r := range rows {
		if inIntersection(r) {
			want = append(want, r.ID)
		}
	}

	assert.Equal(t, want, ids(got))
}

func TestStatusFilterKeepsRelativeOrder(t *testing.T) {
	// 상태 [상, 하, 중, 하] 에서 하를 거르면 두 건이 원래 순서대로 나와야 한다
	rows := []models.BranchGame{
		entry(1, "Catan", "A-01", models.StatusGood, day("2024-04-01"), true, false, nil),
		entry(2, "Pandemic", "A-02", models.StatusPoor, day("2024-04-02"), true, false, nil),
		entry(3, "Azul", "A-03", models.StatusFair, day("2024-04-03"), true, false, nil),
		entry(4, "Splendor", "A-04", models.StatusPoor, day("2024-04-04"), true, false, nil),
	}

	got := Apply(rows, Filters{Status: statusPtr(models.StatusPoor)}, SortState{})

	require.Len(t, got, 2)
	assert.Equal(t, []uint{2, 4}, ids(got))
}

func TestDateRangeIsInclusiveAndIgnoresTimeOfDay(t *testing.T) {
	// 경계일의 어느 시각에 점검했든 포함되어야 한다
	rows := []models.BranchGame{
		entry(1, "Catan", "A-01", models.StatusGood, time.Date(2024, 4, 1, 0, 5, 0, 0, time.UTC), true, false, nil),
		entry(2, "Azul", "A-02", models.StatusGood, time.Date(2024, 4, 1, 23, 59, 59, 0, time.UTC), true, false, nil),
		entry(3, "Pandemic", "A-03", models.StatusGood, time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC), true, false, nil),
		entry(4, "Splendor", "A-04", models.StatusGood, time.Date(2024, 4, 15, 8, 30, 0, 0, time.UTC), true, false, nil),
		entry(5, "Wingspan", "A-05", models.StatusGood, time.Date(2024, 4, 16, 0, 0, 1, 0, time.UTC), true, false, nil),
	}

	f := Filters{CheckedFrom: datePtr("2024-04-01"), CheckedTo: datePtr("2024-04-15")}
	got := Apply(rows, f, SortState{})

	assert.Equal(t, []uint{1, 2, 3, 4}, ids(got))
}

func TestSortCycle(t *testing.T) {
	cases := []struct {
		name  string
		start SortState
		click SortField
		want  SortState
	}{
		{"none to asc", SortState{}, SortName, SortState{SortName, DirAsc}},
		{"asc to desc", SortState{SortName, DirAsc}, SortName, SortState{SortName, DirDesc}},
		{"desc back to none", SortState{SortName, DirDesc}, SortName, SortState{}},
		{"switching field resets to asc", SortState{SortName, DirDesc}, SortDate, SortState{SortDate, DirAsc}},
		{"switching from status resets to asc", SortState{SortStatus, DirAsc}, SortName, SortState{SortName, DirAsc}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.start.Cycle(tc.click))
		})
	}
}

// 같은 필드를 세 번 누르면 정렬 해제 상태로 돌아오고,
// 그 상태의 Apply는 입력(삽입) 순서를 그대로 돌려준다.
func TestThreeClicksRestoreInsertionOrder(t *testing.T) {
	rows := sampleRows()

	s := SortState{}
	s = s.Cycle(SortDate)
	s = s.Cycle(SortDate)
	s = s.Cycle(SortDate)

	assert.Equal(t, SortState{}, s)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(Apply(rows, Filters{}, s)))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	before := ids(rows)

	Apply(rows, Filters{}, SortState{SortName, DirDesc})
	Apply(rows, Filters{}, SortState{SortDate, DirAsc})

	assert.Equal(t, before, ids(rows))
}

func TestSortByName(t *testing.T) {
	rows := []models.BranchGame{
		entry(1, "Ticket to Ride", "A-01", models.StatusGood, day("2024-04-01"), true, false, nil),
		entry(2, "Azul", "A-02", models.StatusGood, day("2024-04-02"), true, false, nil),
		entry(3, "catan", "A-03", models.StatusGood, day("2024-04-03"), true, false, nil),
		entry(4, "Pandemic", "A-04", models.StatusGood, day("2024-04-04"), true, false, nil),
	}

	asc := Apply(rows, Filters{}, SortState{SortName, DirAsc})
	assert.Equal(t, []uint{2, 3, 4, 1}, ids(asc)) // 로케일 비교라 소문자 catan도 C 자리

	desc := Apply(rows, Filters{}, SortState{SortName, DirDesc})
	assert.Equal(t, []uint{1, 4, 3, 2}, ids(desc))
}

func TestSortByKoreanName(t *testing.T) {
	rows := []models.BranchGame{
		entry(1, "할리갈리", "A-01", models.StatusGood, day("2024-04-01"), true, false, nil),
		entry(2, "뱅", "A-02", models.StatusGood, day("2024-04-02"), true, false, nil),
		entry(3, "스플렌더", "A-03", models.StatusGood, day("2024-04-03"), true, false, nil),
	}

	got := Apply(rows, Filters{}, SortState{SortName, DirAsc})
	assert.Equal(t, []uint{2, 3, 1}, ids(got)) // 뱅 < 스플렌더 < 할리갈리
}

func TestSortByStatusUsesCodePointOrder(t *testing.T) {
	// 상(U+C0C1) < 중(U+C911) < 하(U+D558) — 심각도 순서가 아니라 코드포인트 순서다
	rows := []models.BranchGame{
		entry(1, "Catan", "A-01", models.StatusPoor, day("2024-04-01"), true, false, nil),
		entry(2, "Azul", "A-02", models.StatusGood, day("2024-04-02"), true, false, nil),
		entry(3, "Pandemic", "A-03", models.StatusFair, day("2024-04-03"), true, false, nil),
	}

	got := Apply(rows, Filters{}, SortState{SortStatus, DirAsc})
	assert.Equal(t, []uint{2, 3, 1}, ids(got))
}

func TestSortByDate(t *testing.T) {
	rows := sampleRows()

	got := Apply(rows, Filters{}, SortState{SortDate, DirAsc})
	assert.Equal(t, []uint{3, 4, 2, 1, 5}, ids(got))
}

// 동률 값은 stable 정렬이라 입력 순서를 유지한다
func TestStableSortKeepsInsertionOrderForTies(t *testing.T) {
	rows := []models.BranchGame{
		entry(1, "Catan", "A-01", models.StatusGood, day("2024-04-01"), true, false, nil),
		entry(2, "Azul", "A-02", models.StatusGood, day("2024-04-01"), true, false, nil),
		entry(3, "Pandemic", "A-03", models.StatusGood, day("2024-04-01"), true, false, nil),
	}

	got := Apply(rows, Filters{}, SortState{SortStatus, DirAsc})
	assert.Equal(t, []uint{1, 2, 3}, ids(got))
}
