package db

import (
	"time"

	"repair-server/confs"
	"repair-server/entities"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres connection pool described by cfg.
func Connect(cfg confs.DatabaseConfig, log *logrus.Logger) (Database, error) {
	if cfg.URL != "" {
		log.Info("Connecting to database using database.url...")
	} else {
		log.WithFields(logrus.Fields{
			"host":   cfg.Host,
			"port":   cfg.Port,
			"dbname": cfg.DBName,
		}).Info("Connecting to database using individual parameters...")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database instance")
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("Database connection established successfully")

	return &GormDatabase{DB: db}, nil
}

// AutoMigrate creates the four record tables together with the unique
// indexes that back the natural-key constraints.
func AutoMigrate(database Database) error {
	err := database.GetDB().AutoMigrate(
		&entities.Device{},
		&entities.Part{},
		&entities.Technician{},
		&entities.Service{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}
	return nil
}
