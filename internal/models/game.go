package models

import "time"

// Game: 전 지점이 공유하는 카탈로그 게임
type Game struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null"`
	Description string  `gorm:"type:text"`
	Photo       *string `gorm:"size:500"` // 게임 사진 URL (옵션)
	MinPlayers  int     `gorm:"not null;default:1"`
	MaxPlayers  int     `gorm:"not null;default:1"`
	PlayTime    int     `gorm:"not null"` // 분 단위
	Difficulty  int     `gorm:"not null"` // 1~5
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
