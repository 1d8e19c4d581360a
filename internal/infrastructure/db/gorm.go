package db

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string, logSQL bool) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), logSQL)
}

// OpenGormWithDialector lets tests hand in a dialector over a fake conn.
func OpenGormWithDialector(dial gorm.Dialector, logSQL bool) (*gorm.DB, error) {
	level := logger.Warn
	if logSQL {
		level = logger.Info
	}
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(level),
		// gorm.ErrDuplicatedKey instead of driver specific errors
		TranslateError:       true,
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
