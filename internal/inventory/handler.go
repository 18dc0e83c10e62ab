package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"boardcafe-backend/internal/audit"
	"boardcafe-backend/internal/auth"
	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/listview"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AddBranchGameRequest struct {
	GameID         uint    `json:"game_id"`
	BranchID       *uint   `json:"branch_id"` // super_admin용
	GameIdentifier *string `json:"game_identifier"`
}

type UpdateBranchGameRequest struct {
	Status         *models.GameStatus `json:"status"`
	MissingParts   *string            `json:"missing_parts"`
	RulebookExists *bool              `json:"rulebook_exists"`
	ReorderNeeded  *bool              `json:"reorder_needed"`
	Inspector      *string            `json:"inspector"`
	LastCheckDate  *string            `json:"last_check_date"` // "2025-04-18"
	GameIdentifier *string            `json:"game_identifier"`
}

type BranchGameResponse struct {
	ID             uint              `json:"id"`
	BranchID       uint              `json:"branch_id"`
	GameID         uint              `json:"game_id"`
	GameName       string            `json:"game_name"`
	GamePhoto      *string           `json:"game_photo"`
	GameIdentifier string            `json:"game_identifier"`
	LastCheckDate  string            `json:"last_check_date"`
	RulebookExists bool              `json:"rulebook_exists"`
	Status         models.GameStatus `json:"status"`
	ReorderNeeded  bool              `json:"reorder_needed"`
	MissingParts   *string           `json:"missing_parts"`
	Inspector      *string           `json:"inspector"`
}

func toBranchGameResponse(bg models.BranchGame) BranchGameResponse {
	res := BranchGameResponse{
		ID:             bg.ID,
		BranchID:       bg.BranchID,
		GameID:         bg.GameID,
		GameIdentifier: bg.GameIdentifier,
		LastCheckDate:  bg.LastCheckDate.Format("2006-01-02"),
		RulebookExists: bg.RulebookExists,
		Status:         bg.Status,
		ReorderNeeded:  bg.ReorderNeeded,
		MissingParts:   bg.MissingParts,
		Inspector:      bg.Inspector,
	}
	if bg.Game != nil {
		res.GameName = bg.Game.Name
		res.GamePhoto = bg.Game.Photo
	}
	return res
}

func toBranchGameResponses(rows []models.BranchGame) []BranchGameResponse {
	out := make([]BranchGameResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBranchGameResponse(r))
	}
	return out
}

// ----------------------------------------
// 공통 헬퍼
// ----------------------------------------

func resolveBranchIDFromBodyOrRole(c *fiber.Ctx, bodyBranchID *uint) (uint, error) {
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

	// super_admin
	if bodyBranchID == nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "branch_id는 필수입니다")
	}
	return *bodyBranchID, nil
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

	// super_admin은 query로 지점을 지정한다
	branchID, err := strconv.Atoi(c.Query("branch_id"))
	if err != nil || branchID <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "branch_id는 필수입니다")
	}
	return uint(branchID), nil
}

// 감사 로그용 작성자 정보
func getManagerInfo(c *fiber.Ctx) (uint, string, error) {
	idVal := c.Locals(auth.CtxManagerIDKey)
	managerID, ok := idVal.(uint)
	if !ok {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "세션 정보를 확인할 수 없습니다")
	}

	var manager models.Manager
	if err := database.DB.First(&manager, managerID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "계정 정보를 불러올 수 없습니다")
	}

	return managerID, manager.Username, nil
}

// 지점 소유권 검사를 포함해 행 하나를 불러온다.
// 다른 지점의 행은 존재 여부를 흘리지 않도록 404로 처리한다.
func loadOwnedBranchGame(c *fiber.Ctx, id string) (*models.BranchGame, error) {
	roleVal := c.Locals(auth.CtxManagerRoleKey)
	role, ok := roleVal.(models.ManagerRole)
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "권한 정보를 확인할 수 없습니다")
	}

	query := database.DB.Preload("Game")
	if role == models.RoleBranchManager {
		bVal := c.Locals(auth.CtxBranchIDKey)
		bPtr, ok := bVal.(*uint)
		if !ok || bPtr == nil {
			return nil, fiber.NewError(fiber.StatusForbidden, "지점 정보를 확인할 수 없습니다")
		}
		query = query.Where("branch_id = ?", *bPtr)
	}

	var bg models.BranchGame
	if err := query.First(&bg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "게임을 찾을 수 없습니다")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "게임을 불러올 수 없습니다")
	}
	return &bg, nil
}

func parseListQuery(c *fiber.Ctx) (listview.Filters, listview.SortState, error) {
	f := listview.Filters{
		Name:       c.Query("name"),
		Identifier: c.Query("identifier"),
	}

	if v := c.Query("status"); v != "" {
		st := models.GameStatus(v)
		if !st.Valid() {
			return f, listview.SortState{}, fiber.NewError(fiber.StatusBadRequest, "status는 상/중/하 중 하나여야 합니다")
		}
		f.Status = &st
	}

	if v := c.Query("rulebook"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, listview.SortState{}, fiber.NewError(fiber.StatusBadRequest, "rulebook은 true/false여야 합니다")
		}
		f.Rulebook = &b
	}

	if v := c.Query("reorder"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, listview.SortState{}, fiber.NewError(fiber.StatusBadRequest, "reorder는 true/false여야 합니다")
		}
		f.Reorder = &b
	}

	if v := c.Query("checked_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, listview.SortState{}, fiber.NewError(fiber.StatusBadRequest, "checked_from 형식은 'YYYY-MM-DD' 이어야 합니다")
		}
		f.CheckedFrom = &t
	}

	if v := c.Query("checked_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, listview.SortState{}, fiber.NewError(fiber.StatusBadRequest, "checked_to 형식은 'YYYY-MM-DD' 이어야 합니다")
		}
		f.CheckedTo = &t
	}

	s := listview.SortState{}
	switch field := listview.SortField(c.Query("sort")); field {
	case listview.SortNone:
	case listview.SortName, listview.SortStatus, listview.SortDate:
		s.Field = field
	default:
		return f, s, fiber.NewError(fiber.StatusBadRequest, "sort는 name/status/last_check_date 중 하나여야 합니다")
	}

	if s.Field != listview.SortNone {
		switch dir := listview.Direction(c.Query("dir", string(listview.DirAsc))); dir {
		case listview.DirAsc, listview.DirDesc:
			s.Dir = dir
		default:
			return f, s, fiber.NewError(fiber.StatusBadRequest, "dir은 asc/desc 중 하나여야 합니다")
		}
	}

	return f, s, nil
}

func fetchBranchGames(branchID uint) ([]models.BranchGame, error) {
	var rows []models.BranchGame
	err := database.DB.
		Preload("Game").
		Where("branch_id = ?", branchID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// 점검일을 날짜 단위로 자른다 (date 컬럼이라 시각은 버린다)
func newBranchGame(branchID, gameID uint, identifier string, now time.Time) models.BranchGame {
	return models.BranchGame{
		BranchID:       branchID,
		GameID:         gameID,
		GameIdentifier: identifier,
		LastCheckDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		RulebookExists: true,
		Status:         models.StatusGood,
		ReorderNeeded:  false,
		MissingParts:   nil,
	}
}

// ----------------------------------------
// 지점 게임 목록 CRUD
// ----------------------------------------

// GET /api/branch-games
func ListBranchGamesHandler() fiber.Handler {
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
		return c.JSON(toBranchGameResponses(view))
	}
}

// GET /api/branch-games/:id
func GetBranchGameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bg, err := loadOwnedBranchGame(c, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toBranchGameResponse(*bg))
	}
}

// POST /api/branch-games
// 조건 필드를 주지 않으면 기본값으로 채운다: 상태 상, 룰북 보유, 재주문 불필요, 점검일 오늘
func AddBranchGameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddBranchGameRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		if body.GameID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "game_id는 필수입니다")
		}

		branchID, err := resolveBranchIDFromBodyOrRole(c, body.BranchID)
		if err != nil {
			return err
		}

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", branchID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("지점을 찾을 수 없습니다 (ID: %d)", branchID))
		}

		var game models.Game
		if err := database.DB.First(&game, "id = ?", body.GameID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "게임을 찾을 수 없습니다")
		}

		identifier := ""
		if body.GameIdentifier != nil {
			identifier = *body.GameIdentifier
		}

		bg := newBranchGame(branchID, game.ID, identifier, time.Now())
		if err := database.DB.Create(&bg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "게임을 추가할 수 없습니다")
		}
		bg.Game = &game

		if managerID, managerName, infoErr := getManagerInfo(c); infoErr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				BranchID:    &bg.BranchID,
				ManagerID:   managerID,
				ManagerName: managerName,
				EntityType:  "branch_game",
				EntityID:    bg.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("%s 추가", game.Name),
				After:       bg,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(toBranchGameResponse(bg))
	}
}

// PUT /api/branch-games/:id
// 점검 내용 수정. last_check_date를 생략하면 오늘 날짜로 찍는다.
func UpdateBranchGameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		bg, err := loadOwnedBranchGame(c, id)
		if err != nil {
			return err
		}

		var body UpdateBranchGameRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		before := *bg

		if body.Status != nil {
			if !body.Status.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "status는 상/중/하 중 하나여야 합니다")
			}
			bg.Status = *body.Status
		}

		// 빈 문자열은 null로 지운다
		if body.MissingParts != nil {
			if *body.MissingParts == "" {
				bg.MissingParts = nil
			} else {
				bg.MissingParts = body.MissingParts
			}
		}

		if body.Inspector != nil {
			if *body.Inspector == "" {
				bg.Inspector = nil
			} else {
				bg.Inspector = body.Inspector
			}
		}

		if body.RulebookExists != nil {
			bg.RulebookExists = *body.RulebookExists
		}

		if body.ReorderNeeded != nil {
			bg.ReorderNeeded = *body.ReorderNeeded
		}

		if body.GameIdentifier != nil {
			bg.GameIdentifier = *body.GameIdentifier
		}

		if body.LastCheckDate != nil {
			d, parseErr := time.Parse("2006-01-02", *body.LastCheckDate)
			if parseErr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "날짜 형식은 'YYYY-MM-DD' 이어야 합니다")
			}
			bg.LastCheckDate = d
		} else {
			now := time.Now()
			bg.LastCheckDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		}

		if err := database.DB.Omit("Game").Save(bg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "게임 정보를 수정할 수 없습니다")
		}

		if managerID, managerName, infoErr := getManagerInfo(c); infoErr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				BranchID:    &bg.BranchID,
				ManagerID:   managerID,
				ManagerName: managerName,
				EntityType:  "branch_game",
				EntityID:    bg.ID,
				Action:      models.AuditActionUpdate,
				Description: "점검 내용 수정",
				Before:      before,
				After:       bg,
			})
		}

		return c.JSON(toBranchGameResponse(*bg))
	}
}

// DELETE /api/branch-games/:id
func DeleteBranchGameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		bg, err := loadOwnedBranchGame(c, id)
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&models.BranchGame{}, bg.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "게임을 삭제할 수 없습니다")
		}

		if managerID, managerName, infoErr := getManagerInfo(c); infoErr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				BranchID:    &bg.BranchID,
				ManagerID:   managerID,
				ManagerName: managerName,
				EntityType:  "branch_game",
				EntityID:    bg.ID,
				Action:      models.AuditActionDelete,
				Description: "지점 게임 삭제",
				Before:      bg,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/inspectors
func ListInspectorsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID, err := resolveBranchIDFromQueryOrRole(c)
		if err != nil {
			return err
		}

		var managers []models.Manager
		if err := database.DB.Where("branch_id = ?", branchID).Find(&managers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "점검자 목록을 불러올 수 없습니다")
		}

		res := make([]fiber.Map, 0, len(managers))
		for _, m := range managers {
			res = append(res, fiber.Map{
				"id":       m.ID,
				"username": m.Username,
			})
		}
		return c.JSON(res)
	}
}
