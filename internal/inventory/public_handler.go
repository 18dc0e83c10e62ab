package inventory

import (
	"errors"

	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/listview"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GET /api/branches/:id/games
// 공개 매장 페이지용. 관리자 목록과 동일한 필터/정렬 파라미터를 받는다.
func ListBranchGamesByBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "지점을 찾을 수 없습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "지점 정보를 불러올 수 없습니다")
		}

		filters, sortState, err := parseListQuery(c)
		if err != nil {
			return err
		}

		rows, err := fetchBranchGames(branch.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "게임 목록을 불러올 수 없습니다")
		}

		view := listview.Apply(rows, filters, sortState)
		return c.JSON(toBranchGameResponses(view))
	}
}

// GET /api/branches/:id/overview
// 지점 정보와 게임 목록을 동시에 가져온다. 둘 중 하나라도 실패하면
// 전체 요청이 실패한다 — 부분 결과는 내려주지 않는다.
func BranchOverviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		var rows []models.BranchGame

		g, ctx := errgroup.WithContext(c.Context())
		g.Go(func() error {
			return database.DB.WithContext(ctx).First(&branch, "id = ?", id).Error
		})
		g.Go(func() error {
			return database.DB.WithContext(ctx).
				Preload("Game").
				Where("branch_id = ?", id).
				Order("id ASC").
				Find(&rows).Error
		})

		if err := g.Wait(); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "지점을 찾을 수 없습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "지점 정보를 불러올 수 없습니다")
		}

		return c.JSON(fiber.Map{
			"branch": fiber.Map{
				"id":       branch.ID,
				"name":     branch.Name,
				"photo":    branch.Photo,
				"location": branch.Location,
			},
			"games": toBranchGameResponses(rows),
		})
	}
}
