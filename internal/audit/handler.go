package audit

import (
	"strconv"

	"boardcafe-backend/internal/auth"
	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs
// 지점 관리자는 자기 지점 이력만, super admin은 branch_id query로 조회한다.
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(auth.CtxManagerRoleKey)
		role, ok := roleVal.(models.ManagerRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "권한 정보를 확인할 수 없습니다")
		}

		query := database.DB.Model(&models.AuditLog{})

		if role == models.RoleBranchManager {
			bVal := c.Locals(auth.CtxBranchIDKey)
			bPtr, ok := bVal.(*uint)
			if !ok || bPtr == nil {
				return fiber.NewError(fiber.StatusForbidden, "지점 정보를 확인할 수 없습니다")
			}
			query = query.Where("branch_id = ?", *bPtr)
		} else if v := c.Query("branch_id"); v != "" {
			branchID, err := strconv.Atoi(v)
			if err != nil || branchID <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "branch_id가 올바르지 않습니다")
			}
			query = query.Where("branch_id = ?", branchID)
		}

		if v := c.Query("entity_type"); v != "" {
			query = query.Where("entity_type = ?", v)
		}

		limit := 100
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > 500 {
				return fiber.NewError(fiber.StatusBadRequest, "limit은 1~500 사이여야 합니다")
			}
			limit = n
		}

		var logs []models.AuditLog
		if err := query.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "이력을 불러올 수 없습니다")
		}

		return c.JSON(logs)
	}
}
