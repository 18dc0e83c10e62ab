package audit

import (
	"encoding/json"
	"fmt"

	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/models"
)

type LogOptions struct {
	BranchID    *uint
	ManagerID   uint
	ManagerName string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb 컬럼에는 빈 문자열 대신 JSON null을 넣는다
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		BranchID:    opts.BranchID,
		ManagerID:   opts.ManagerID,
		ManagerName: opts.ManagerName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("감사 로그를 기록할 수 없습니다: %w", err)
	}

	return nil
}
