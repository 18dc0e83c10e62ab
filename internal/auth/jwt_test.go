package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boardcafe-backend/internal/config"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testManager() *models.Manager {
	branchID := uint(2)
	return &models.Manager{
		ID:           7,
		BranchID:     &branchID,
		Username:     "suwon_manager",
		PasswordHash: "$2a$10$not.a.real.hash",
		Role:         models.RoleBranchManager,
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, testManager())
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*JWTCustomClaims)
	require.True(t, ok)

	assert.Equal(t, uint(7), claims.ManagerID)
	assert.Equal(t, "suwon_manager", claims.Username)
	assert.Equal(t, models.RoleBranchManager, claims.Role)
	require.NotNil(t, claims.BranchID)
	assert.Equal(t, uint(2), *claims.BranchID)
	require.NotNil(t, claims.ExpiresAt)
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, testManager())
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("ffffffffffffffffffffffffffffffff"), nil
	})
	assert.Error(t, err)
}

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})

	protected := app.Group("/api", JWTMiddleware(cfg))
	protected.Get("/whoami", func(c *fiber.Ctx) error {
		role, _ := c.Locals(CtxManagerRoleKey).(models.ManagerRole)
		return c.JSON(fiber.Map{"role": role})
	})

	superOnly := protected.Group("/admin", RequireRole(models.RoleSuperAdmin))
	superOnly.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestJWTMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := newTestApp(cfg)

	validToken, err := GenerateToken(testSecret, testManager())
	require.NoError(t, err)

	foreignToken, err := GenerateToken("ffffffffffffffffffffffffffffffff", testManager())
	require.NoError(t, err)

	cases := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "/api/whoami", "", fiber.StatusUnauthorized},
		{"wrong scheme", "/api/whoami", "Basic abc", fiber.StatusUnauthorized},
		{"token signed with another secret", "/api/whoami", "Bearer " + foreignToken, fiber.StatusUnauthorized},
		{"valid token", "/api/whoami", "Bearer " + validToken, fiber.StatusOK},
		{"branch manager blocked from super admin route", "/api/admin/ping", "Bearer " + validToken, fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}
