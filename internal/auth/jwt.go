package auth

import (
	"time"

	"boardcafe-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// 토큰에는 비밀번호 해시를 포함한 어떤 비밀 값도 넣지 않는다.
type JWTCustomClaims struct {
	ManagerID uint               `json:"manager_id"`
	Username  string             `json:"username"`
	Role      models.ManagerRole `json:"role"`
	BranchID  *uint              `json:"branch_id"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, manager *models.Manager) (string, error) {
	claims := &JWTCustomClaims{
		ManagerID: manager.ID,
		Username:  manager.Username,
		Role:      manager.Role,
		BranchID:  manager.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // 1일
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
