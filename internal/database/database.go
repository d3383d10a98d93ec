package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/confiance/investment-api/internal/investment"
	"github.com/confiance/investment-api/internal/recommendation"
)

// NewDatabase initializes and returns a new GORM DB connection
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&recommendation.Recommendation{},
		&investment.Product{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
