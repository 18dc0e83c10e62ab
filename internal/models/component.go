package models

// Component: 게임 구성품 (개수/이름/사진)
type Component struct {
	ID     uint `gorm:"primaryKey"`
	GameID uint `gorm:"not null;index"`
	Game   *Game
	Name   string  `gorm:"column:component_name;size:100;not null"`
	Count  int     `gorm:"column:component_count;not null"`
	Photo  *string `gorm:"column:component_photo;size:500"`
}
