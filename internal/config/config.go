package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	HTTPPort      string
	DatabaseDSN   string
	JWTSecret     string
	CORSOrigins   string
	GameImagePath string // 게임 사진이 저장되는 폴더 경로
}

func Load(log *zap.Logger) *Config {
	// .env는 로컬 개발용, 없어도 된다
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=boardcafe port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		GameImagePath: getEnv("GAME_IMAGE_PATH", "./game-images"),
	}

	// Production 필수 값 검사
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET 환경변수가 설정되지 않았습니다")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("JWT_SECRET은 최소 32자 이상이어야 합니다")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=boardcafe port=5432 sslmode=disable" {
		log.Warn("DATABASE_DSN 기본값을 사용 중입니다. production에서는 반드시 변경하세요")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Warn("CORS_ALLOWED_ORIGINS 기본값을 사용 중입니다. production에서는 반드시 변경하세요")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
