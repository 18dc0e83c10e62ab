package admin

import (
	"errors"
	"strings"

	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type BranchResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Photo     *string `json:"photo"`
	Location  *string `json:"location"`
	CreatedAt string  `json:"created_at"`
}

type CreateBranchRequest struct {
	Name     string  `json:"name"`
	Photo    *string `json:"photo"`
	Location *string `json:"location"`
}

type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Photo    *string `json:"photo"`
	Location *string `json:"location"`
}

type CreateBranchManagerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type BranchManagerResponse struct {
	ID        uint               `json:"id"`
	BranchID  *uint              `json:"branch_id"`
	Username  string             `json:"username"`
	Role      models.ManagerRole `json:"role"`
	CreatedAt string             `json:"created_at"`
}

func toBranchResponse(b models.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Photo:     b.Photo,
		Location:  b.Location,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ----------------------------------------
// 지점 CRUD
// ----------------------------------------

func CreateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "지점 이름은 필수입니다")
		}

		branch := models.Branch{
			Name:     body.Name,
			Photo:    body.Photo,
			Location: body.Location,
		}

		if err := database.DB.Create(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "지점을 생성할 수 없습니다")
		}

		return c.Status(fiber.StatusCreated).JSON(toBranchResponse(branch))
	}
}

// 공개 매장 선택 페이지에서도 쓴다 (라우팅에서 공개로 노출)
func ListBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var branches []models.Branch
		if err := database.DB.Order("id ASC").Find(&branches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "지점 목록을 불러올 수 없습니다")
		}

		res := make([]BranchResponse, 0, len(branches))
		for _, b := range branches {
			res = append(res, toBranchResponse(b))
		}
		return c.JSON(res)
	}
}

func GetBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "지점을 찾을 수 없습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "지점 정보를 불러올 수 없습니다")
		}

		return c.JSON(toBranchResponse(branch))
	}
}

func UpdateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "지점을 찾을 수 없습니다")
		}

		var body UpdateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "지점 이름은 비울 수 없습니다")
			}
			branch.Name = name
		}

		if body.Photo != nil {
			if *body.Photo == "" {
				branch.Photo = nil
			} else {
				branch.Photo = body.Photo
			}
		}

		if body.Location != nil {
			if *body.Location == "" {
				branch.Location = nil
			} else {
				branch.Location = body.Location
			}
		}

		if err := database.DB.Save(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "지점 정보를 수정할 수 없습니다")
		}

		return c.JSON(toBranchResponse(branch))
	}
}

func DeleteBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "지점을 찾을 수 없습니다")
		}

		// 소속 데이터가 남아 있으면 지우지 않는다
		var gameCount int64
		database.DB.Model(&models.BranchGame{}).Where("branch_id = ?", branch.ID).Count(&gameCount)
		if gameCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "지점에 게임 목록이 남아 있어 삭제할 수 없습니다")
		}

		var managerCount int64
		database.DB.Model(&models.Manager{}).Where("branch_id = ?", branch.ID).Count(&managerCount)
		if managerCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "지점에 관리자 계정이 남아 있어 삭제할 수 없습니다")
		}

		if err := database.DB.Delete(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "지점을 삭제할 수 없습니다")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ----------------------------------------
// 지점 관리자 계정
// ----------------------------------------

func CreateBranchManagerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "지점을 찾을 수 없습니다")
		}

		var body CreateBranchManagerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.Username = strings.TrimSpace(strings.ToLower(body.Username))
		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "아이디와 비밀번호는 필수입니다")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "비밀번호를 처리할 수 없습니다")
		}

		manager := models.Manager{
			BranchID:     &branch.ID,
			Username:     body.Username,
			PasswordHash: string(hash),
			Role:         models.RoleBranchManager,
		}

		if err := database.DB.Create(&manager).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "계정을 생성할 수 없습니다 (아이디 중복 여부를 확인하세요)")
		}

		return c.Status(fiber.StatusCreated).JSON(BranchManagerResponse{
			ID:        manager.ID,
			BranchID:  manager.BranchID,
			Username:  manager.Username,
			Role:      manager.Role,
			CreatedAt: manager.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func ListBranchManagersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "지점을 찾을 수 없습니다")
		}

		var managers []models.Manager
		if err := database.DB.Where("branch_id = ?", branch.ID).Find(&managers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "관리자 목록을 불러올 수 없습니다")
		}

		res := make([]BranchManagerResponse, 0, len(managers))
		for _, m := range managers {
			res = append(res, BranchManagerResponse{
				ID:        m.ID,
				BranchID:  m.BranchID,
				Username:  m.Username,
				Role:      m.Role,
				CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}
