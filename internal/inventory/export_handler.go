package inventory

import (
	"fmt"

	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/listview"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const inspectionSheetName = "점검표"

var inspectionHeaders = []string{
	"게임 이름", "구분자", "최근 점검일", "점검자", "상태", "룰북", "재주문 필요", "누락 부품",
}

// BuildInspectionSheet: 현재 필터가 적용된 목록을 xlsx 점검표로 만든다.
func BuildInspectionSheet(rows []models.BranchGame) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", inspectionSheetName); err != nil {
		return nil, err
	}

	for i, h := range inspectionHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(inspectionSheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, bg := range rows {
		name := ""
		if bg.Game != nil {
			name = bg.Game.Name
		}
		inspector := ""
		if bg.Inspector != nil {
			inspector = *bg.Inspector
		}
		missing := ""
		if bg.MissingParts != nil {
			missing = *bg.MissingParts
		}
		rulebook := "없음"
		if bg.RulebookExists {
			rulebook = "보유"
		}
		reorder := ""
		if bg.ReorderNeeded {
			reorder = "재주문 필요"
		}

		values := []interface{}{
			name,
			bg.GameIdentifier,
			bg.LastCheckDate.Format("2006-01-02"),
			inspector,
			string(bg.Status),
			rulebook,
			reorder,
			missing,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(inspectionSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// GET /api/branch-games/export
func ExportBranchGamesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID, err := resolveBranchIDFromQueryOrRole(c)
		if err != nil {
			return err
		}

		filters, sortState, err := parseListQuery(c)
		if err != nil {
			return err
		}

		rows, err := fetchBranchGames(branchID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "게임 목록을 불러올 수 없습니다")
		}

		view := listview.Apply(rows, filters, sortState)

		f, err := BuildInspectionSheet(view)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "점검표를 생성할 수 없습니다")
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "점검표를 생성할 수 없습니다")
		}

		var branch models.Branch
		filename := "inspection.xlsx"
		if err := database.DB.First(&branch, branchID).Error; err == nil {
			filename = fmt.Sprintf("inspection-%d.xlsx", branch.ID)
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	}
}
