package auth

import (
	"fmt"
	"strings"

	"boardcafe-backend/internal/config"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxManagerIDKey   = "manager_id"
	CtxManagerRoleKey = "manager_role"
	CtxBranchIDKey    = "branch_id"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization 헤더가 없습니다")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization 형식은 'Bearer <token>' 이어야 합니다")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("지원하지 않는 서명 방식")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "유효하지 않거나 만료된 토큰입니다")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "토큰을 해석할 수 없습니다")
		}

		c.Locals(CtxManagerIDKey, claims.ManagerID)
		c.Locals(CtxManagerRoleKey, claims.Role)
		c.Locals(CtxBranchIDKey, claims.BranchID)

		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.ManagerRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxManagerRoleKey)
		role, ok := roleVal.(models.ManagerRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "권한 정보를 확인할 수 없습니다")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "이 작업을 수행할 권한이 없습니다")
	}
}
