package database

import (
	"boardcafe-backend/internal/config"
	"boardcafe-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config, log *zap.Logger) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("데이터베이스 연결 실패", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.Branch{},
		&models.Manager{},
		&models.Game{},
		&models.Component{},
		&models.BranchGame{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatal("AutoMigrate 실패", zap.Error(err))
	}

	// status 컬럼에 상/중/하 외 값이 들어가지 않도록 CHECK constraint를 건다.
	// AutoMigrate는 enum constraint를 만들어주지 않으므로 수동 migration.
	if DB.Migrator().HasTable(&models.BranchGame{}) {
		var constraintExists bool
		DB.Raw(`
			SELECT EXISTS (
				SELECT 1
				FROM information_schema.table_constraints
				WHERE table_name = 'branch_game_list'
				AND constraint_name = 'chk_branch_game_list_status'
			)
		`).Scan(&constraintExists)

		if !constraintExists {
			if chkErr := DB.Exec(`
				ALTER TABLE branch_game_list
				ADD CONSTRAINT chk_branch_game_list_status
				CHECK (status IN ('상', '중', '하'))
			`).Error; chkErr != nil {
				log.Warn("status CHECK constraint 추가 실패", zap.Error(chkErr))
			} else {
				log.Info("status CHECK constraint 추가됨")
			}
		}
	}

	log.Info("데이터베이스 연결 및 migration 완료")
}
