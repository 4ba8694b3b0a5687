package db

import (
	"fmt"
	"os"

	"app/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
// 接続先はconfig.Loadで検証済みのPOSTGRES_*を使う。
// DATABASE_URL（Heroku等のPaaS形式）があればそちらを最優先で使う。
func Connect(cfg config.Config) (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresDB,
		sslMode(),
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// sslmodeだけは必須にしない（ローカルはdisableで動かす）
func sslMode() string {
	if v := os.Getenv("POSTGRES_SSLMODE"); v != "" {
		return v
	}
	return "disable"
}
