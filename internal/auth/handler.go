package auth

import (
	"errors"
	"strings"

	"boardcafe-backend/internal/config"
	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterSuperAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ManagerResponse struct {
	ID       uint               `json:"id"`
	BranchID *uint              `json:"branch_id"`
	Username string             `json:"username"`
	Role     models.ManagerRole `json:"role"`
}

func RegisterSuperAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterSuperAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.Username = strings.TrimSpace(strings.ToLower(body.Username))

		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "아이디와 비밀번호는 필수입니다")
		}

		// super admin은 하나만 허용
		var count int64
		database.DB.Model(&models.Manager{}).
			Where("role = ?", models.RoleSuperAdmin).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "이미 super admin이 존재합니다")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "비밀번호를 처리할 수 없습니다")
		}

		manager := models.Manager{
			Username:     body.Username,
			PasswordHash: string(hash),
			Role:         models.RoleSuperAdmin,
		}

		if err := database.DB.Create(&manager).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "계정을 생성할 수 없습니다")
		}

		return c.Status(fiber.StatusCreated).JSON(ManagerResponse{
			ID:       manager.ID,
			BranchID: manager.BranchID,
			Username: manager.Username,
			Role:     manager.Role,
		})
	}
}

// POST /api/auth/login
// 자격 증명 불일치는 401로 끝난다. 시스템 장애(500)와 반드시 구분하고,
// 실패 시 어떤 쓰기도 일어나지 않는다.
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.Username = strings.TrimSpace(strings.ToLower(body.Username))

		var manager models.Manager
		if err := database.DB.Where("username = ?", body.Username).First(&manager).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "로그인 처리 중 오류가 발생했습니다")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다")
		}

		token, err := GenerateToken(cfg.JWTSecret, &manager)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "토큰을 생성할 수 없습니다")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"manager": ManagerResponse{
				ID:       manager.ID,
				BranchID: manager.BranchID,
				Username: manager.Username,
				Role:     manager.Role,
			},
		})
	}
}

// GET /api/auth/me
// 클라이언트가 저장해 둔 토큰으로 세션을 복원한다. 토큰이 유효해도
// 계정이 삭제되었으면 401 — 손상된 세션은 클라이언트가 지우면 된다.
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		managerIDVal := c.Locals(CtxManagerIDKey)
		managerID, ok := managerIDVal.(uint)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "세션 정보를 확인할 수 없습니다")
		}

		var manager models.Manager
		if err := database.DB.First(&manager, managerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "세션이 더 이상 유효하지 않습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "세션 정보를 불러올 수 없습니다")
		}

		response := fiber.Map{
			"id":        manager.ID,
			"branch_id": manager.BranchID,
			"username":  manager.Username,
			"role":      manager.Role,
		}

		// 지점 관리자면 지점 정보도 함께 내려준다
		if manager.BranchID != nil {
			var branch models.Branch
			if err := database.DB.First(&branch, *manager.BranchID).Error; err == nil {
				response["branch"] = fiber.Map{
					"id":       branch.ID,
					"name":     branch.Name,
					"photo":    branch.Photo,
					"location": branch.Location,
				}
			}
		}

		return c.JSON(response)
	}
}
