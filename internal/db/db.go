package db

import (
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := database.AutoMigrate(
		&models.Position{},
		&models.Employee{},
		&models.EquipmentUnit{},
		&models.WorkLogEntry{},
	); err != nil {
		return nil, errors.Wrap(err, "migrate schema")
	}

	return database, nil
}
