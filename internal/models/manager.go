package models

import "time"

type ManagerRole string

const (
	RoleSuperAdmin    ManagerRole = "super_admin"
	RoleBranchManager ManagerRole = "branch_manager"
)

// Manager: 지점 관리자 계정. super_admin만 BranchID가 nil일 수 있다.
type Manager struct {
	ID           uint `gorm:"primaryKey"`
	BranchID     *uint
	Branch       *Branch
	Username     string      `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string      `gorm:"size:255;not null"`
	Role         ManagerRole `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Manager) TableName() string {
	return "branch_managers"
}
