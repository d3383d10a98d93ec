package investment

import (
	"errors"

	"gorm.io/gorm"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) Create(product *Product) error {
	return d.db.Create(product).Error
}

// GetByID returns (nil, nil) when no product exists with the given id.
func (d *Database) GetByID(id uint) (*Product, error) {
	var product Product
	if err := d.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (d *Database) List(page, size int) ([]Product, int64, error) {
	var total int64
	if err := d.db.Model(&Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []Product
	err := d.db.Order("id ASC").
		Offset(page * size).
		Limit(size).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
