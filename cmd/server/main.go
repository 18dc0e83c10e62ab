package main

import (
	"strings"

	"boardcafe-backend/internal/admin"
	"boardcafe-backend/internal/audit"
	"boardcafe-backend/internal/auth"
	"boardcafe-backend/internal/catalog"
	"boardcafe-backend/internal/config"
	"boardcafe-backend/internal/dashboard"
	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/inventory"
	"boardcafe-backend/internal/logger"
	"boardcafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg := config.Load(log)
	database.Init(cfg, log)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 사진 업로드 여유분
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("처리되지 않은 오류", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "예상하지 못한 서버 오류가 발생했습니다",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// 게임 사진 정적 서빙
	app.Static("/images/games", cfg.GameImagePath)

	api := app.Group("/api")

	// 공개 라우트: 매장 선택 / 매장별 게임 목록
	api.Get("/branches", admin.ListBranchesHandler())
	api.Get("/branches/:id", admin.GetBranchHandler())
	api.Get("/branches/:id/games", inventory.ListBranchGamesByBranchHandler())
	api.Get("/branches/:id/overview", inventory.BranchOverviewHandler())

	// 공개 인증 라우트
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// 인증 필요
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// 카탈로그 게임
	protected.Get("/games", catalog.ListGamesHandler())
	protected.Get("/games/:id", catalog.GetGameHandler())
	protected.Post("/games", catalog.CreateGameHandler())
	protected.Post("/games/photo", catalog.UploadGamePhotoHandler(cfg))
	protected.Get("/games/:id/components", catalog.ListGameComponentsHandler())

	// 지점 게임 목록
	protected.Get("/branch-games", inventory.ListBranchGamesHandler())
	protected.Get("/branch-games/export", inventory.ExportBranchGamesHandler())
	protected.Get("/branch-games/:id", inventory.GetBranchGameHandler())
	protected.Post("/branch-games", inventory.AddBranchGameHandler())
	protected.Put("/branch-games/:id", inventory.UpdateBranchGameHandler())
	protected.Delete("/branch-games/:id", inventory.DeleteBranchGameHandler())

	// 점검자 목록 (지점 관리자 계정)
	protected.Get("/inspectors", inventory.ListInspectorsHandler())

	// 대시보드
	protected.Get("/dashboard/attention", dashboard.AttentionHandler())

	// 변경 이력
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Super admin 전용: 지점/계정 관리
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleSuperAdmin))

	adminRoutes.Post("/branches", admin.CreateBranchHandler())
	adminRoutes.Put("/branches/:id", admin.UpdateBranchHandler())
	adminRoutes.Delete("/branches/:id", admin.DeleteBranchHandler())
	adminRoutes.Post("/branches/:id/managers", admin.CreateBranchManagerHandler())
	adminRoutes.Get("/branches/:id/managers", admin.ListBranchManagersHandler())

	log.Info("서버 시작", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal("서버 종료", zap.Error(err))
	}
}
