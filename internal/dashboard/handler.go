package dashboard

import (
	"strconv"

	"boardcafe-backend/internal/auth"
	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type attentionRowResponse struct {
	ID             uint              `json:"id"`
	GameName       string            `json:"game_name"`
	GameIdentifier string            `json:"game_identifier"`
	LastCheckDate  string            `json:"last_check_date"`
	Status         models.GameStatus `json:"status"`
	ReorderNeeded  bool              `json:"reorder_needed"`
	MissingParts   *string           `json:"missing_parts"`
}

func resolveBranchIDFromQueryOrRole(c *fiber.Ctx) (uint, error) {
	roleVal := c.Locals(auth.CtxManagerRoleKey)
	role, ok := roleVal.(models.ManagerRole)
	if !ok {
		return 0, fiber.NewError(fiber.StatusForbidden, "권한 정보를 확인할 수 없습니다")
	}

	if role == models.RoleBranchManager {
		bVal := c.Locals(auth.CtxBranchIDKey)
		bPtr, ok := bVal.(*uint)
		if !ok || bPtr == nil {
			return 0, fiber.NewError(fiber.StatusForbidden, "지점 정보를 확인할 수 없습니다")
		}
		return *bPtr, nil
	}

	branchID, err := strconv.Atoi(c.Query("branch_id"))
	if err != nil || branchID <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "branch_id는 필수입니다")
	}
	return uint(branchID), nil
}

// GET /api/dashboard/attention
// 주의가 필요한 게임(재주문/누락/상태 하)과 집계를 함께 내려준다.
func AttentionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID, err := resolveBranchIDFromQueryOrRole(c)
		if err != nil {
			return err
		}

		var rows []models.BranchGame
		if err := database.DB.
			Preload("Game").
			Where("branch_id = ?", branchID).
			Order("id ASC").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "게임 목록을 불러올 수 없습니다")
		}

		attention := Attention(rows)
		res := make([]attentionRowResponse, 0, len(attention))
		for _, bg := range attention {
			row := attentionRowResponse{
				ID:             bg.ID,
				GameIdentifier: bg.GameIdentifier,
				LastCheckDate:  bg.LastCheckDate.Format("2006-01-02"),
				Status:         bg.Status,
				ReorderNeeded:  bg.ReorderNeeded,
				MissingParts:   bg.MissingParts,
			}
			if bg.Game != nil {
				row.GameName = bg.Game.Name
			}
			res = append(res, row)
		}

		return c.JSON(fiber.Map{
			"stats": ComputeStats(rows),
			"games": res,
		})
	}
}
