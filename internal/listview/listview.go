// Package listview는 지점 게임 목록 화면의 필터/정렬 로직이다.
// DB에서 읽어온 목록을 받아 표시할 부분집합과 순서를 계산할 뿐,
// 입력 slice는 절대 수정하지 않는다.
package listview

import (
	"sort"
	"strings"
	"time"

	"boardcafe-backend/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortField string

const (
	SortNone   SortField = ""
	SortName   SortField = "name"
	SortStatus SortField = "status"
	SortDate   SortField = "last_check_date"
)

type Direction string

const (
	DirNone Direction = ""
	DirAsc  Direction = "asc"
	DirDesc Direction = "desc"
)

type SortState struct {
	Field SortField
	Dir   Direction
}

// Cycle: 같은 필드를 누를 때마다 오름차순 → 내림차순 → 해제.
// 다른 필드로 바꾸면 항상 오름차순부터 시작한다.
func (s SortState) Cycle(field SortField) SortState {
	if s.Field != field || s.Dir == DirNone {
		return SortState{Field: field, Dir: DirAsc}
	}
	if s.Dir == DirAsc {
		return SortState{Field: field, Dir: DirDesc}
	}
	return SortState{}
}

// Filters: 모든 조건은 독립적으로 선택 가능하고 AND로 결합된다.
type Filters struct {
	Name        string // 게임 이름 부분 일치 (대소문자 무시)
	Identifier  string // 지점 구분자 부분 일치 (대소문자 무시)
	Status      *models.GameStatus
	Rulebook    *bool
	Reorder     *bool
	CheckedFrom *time.Time // 점검일 범위 시작 (해당 일 포함)
	CheckedTo   *time.Time // 점검일 범위 끝 (해당 일 포함)
}

// dateOnly: 시각을 버리고 날짜만 남긴다. 점검일 비교는 달력 일 단위.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (f Filters) Match(bg models.BranchGame) bool {
	if f.Name != "" {
		if bg.Game == nil {
			return false
		}
		if !strings.Contains(strings.ToLower(bg.Game.Name), strings.ToLower(f.Name)) {
			return false
		}
	}

	if f.Identifier != "" {
		if !strings.Contains(strings.ToLower(bg.GameIdentifier), strings.ToLower(f.Identifier)) {
			return false
		}
	}

	if f.Status != nil && bg.Status != *f.Status {
		return false
	}

	if f.Rulebook != nil && bg.RulebookExists != *f.Rulebook {
		return false
	}

	if f.Reorder != nil && bg.ReorderNeeded != *f.Reorder {
		return false
	}

	checked := dateOnly(bg.LastCheckDate)
	if f.CheckedFrom != nil && checked.Before(dateOnly(*f.CheckedFrom)) {
		return false
	}
	if f.CheckedTo != nil && checked.After(dateOnly(*f.CheckedTo)) {
		return false
	}

	return true
}

// Apply: 필터를 통과한 행을 새 slice로 모아 정렬해 돌려준다.
// 정렬이 해제 상태면 가져온 순서(입력 순서)를 그대로 유지한다.
func Apply(rows []models.BranchGame, f Filters, s SortState) []models.BranchGame {
	out := make([]models.BranchGame, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}

	if s.Field == SortNone || s.Dir == DirNone {
		return out
	}

	var less func(a, b models.BranchGame) bool
	switch s.Field {
	case SortName:
		cl := collate.New(language.Korean)
		less = func(a, b models.BranchGame) bool {
			return cl.CompareString(gameName(a), gameName(b)) < 0
		}
	case SortStatus:
		// 상/중/하는 코드포인트 순서 비교. 상태 심각도 순서가 아니다.
		less = func(a, b models.BranchGame) bool {
			return string(a.Status) < string(b.Status)
		}
	case SortDate:
		less = func(a, b models.BranchGame) bool {
			return a.LastCheckDate.Unix() < b.LastCheckDate.Unix()
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if s.Dir == DirDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

func gameName(bg models.BranchGame) string {
	if bg.Game == nil {
		return ""
	}
	return bg.Game.Name
}
