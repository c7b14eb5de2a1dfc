package db

import (
	"fmt"
	"time"

	"shoppingmall/internal/config"
	"shoppingmall/internal/domain/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const applicationName = "shoppingmall"

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	pgxCfg, err := pgx.ParseConfig(cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("parse database dsn: %w", err)
	}
	pgxCfg.RuntimeParams["application_name"] = applicationName

	sqlDB := stdlib.OpenDB(*pgxCfg)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), Options())
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return gdb, nil
}

// Optionsはテスト用のDBでも同じ設定にするため公開
func Options() *gorm.Config {
	return &gorm.Config{
		// 一意制約違反をgorm.ErrDuplicatedKeyにする
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// Migrate はテーブルを作成・更新する
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Goods{},
		&model.Cart{},
		&model.User{},
	)
}
