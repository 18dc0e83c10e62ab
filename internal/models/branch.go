package models

import "time"

type Branch struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:100;not null;unique"`
	Photo     *string `gorm:"size:500"` // 지점 사진 URL (옵션)
	Location  *string `gorm:"size:255"` // 주소 (옵션)
	CreatedAt time.Time
	UpdatedAt time.Time

	Managers []Manager
}
