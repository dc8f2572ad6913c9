package storage

import (
	"sync"

	"projecthub/internal/config"
	"projecthub/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		env := config.GetEnv()

		// TranslateError maps unique-index violations to gorm.ErrDuplicatedKey,
		// which the membership store relies on for its Conflict response.
		database, err := gorm.Open(postgres.Open(env.DatabaseDsn), &gorm.Config{
			TranslateError: true,
			Logger:         gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			logger.GetLogger().Error("failed to connect to database", "error", err)
			panic(err)
		}

		db = database
	})

	return db
}
