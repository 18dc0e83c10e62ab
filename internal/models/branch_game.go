package models

import "time"

// GameStatus: 구성품 상태 3단계 (상/중/하)
type GameStatus string

const (
	StatusGood GameStatus = "상"
	StatusFair GameStatus = "중"
	StatusPoor GameStatus = "하"
)

func (s GameStatus) Valid() bool {
	switch s {
	case StatusGood, StatusFair, StatusPoor:
		return true
	}
	return false
}

// BranchGame: 지점이 보유한 게임 한 부와 점검 메타데이터.
// 한 행은 정확히 한 지점과 한 카탈로그 게임에 속한다.
type BranchGame struct {
	ID             uint `gorm:"primaryKey"`
	BranchID       uint `gorm:"not null;index"`
	Branch         *Branch
	GameID         uint `gorm:"not null;index"`
	Game           *Game
	GameIdentifier string     `gorm:"size:50"` // 지점 내부 구분자 (예: A-12)
	LastCheckDate  time.Time  `gorm:"type:date;not null"`
	RulebookExists bool       `gorm:"not null;default:true"`
	Status         GameStatus `gorm:"size:10;not null"`
	ReorderNeeded  bool       `gorm:"not null;default:false"`
	MissingParts   *string    `gorm:"size:255"`
	Inspector      *string    `gorm:"size:100"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (BranchGame) TableName() string {
	return "branch_game_list"
}
