package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zsmartex/stockapi/models"
)

var DataBase *gorm.DB

func NewDatabase(dsn string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newLogger,
	})

	if err != nil {
		return nil, err
	}

	return db, nil
}

func ConnectDatabase(env *Env) error {
	db, err := NewDatabase(env.DSN())
	if err != nil {
		return err
	}

	if err := models.Migrate(db); err != nil {
		return err
	}

	DataBase = db

	return nil
}
