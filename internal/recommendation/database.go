package recommendation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/confiance/investment-api/internal/types"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) Create(rec *Recommendation) error {
	return d.db.Create(rec).Error
}

// GetByID returns (nil, nil) when no record exists with the given id.
func (d *Database) GetByID(id uint) (*Recommendation, error) {
	var rec Recommendation
	if err := d.db.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (d *Database) Save(rec *Recommendation) error {
	return d.db.Save(rec).Error
}

func (d *Database) Delete(rec *Recommendation) error {
	return d.db.Delete(rec).Error
}

// List returns one page of recommendations ordered by the given SQL order
// expression, plus the total row count.
func (d *Database) List(page, size int, orderExpr string) ([]Recommendation, int64, error) {
	return d.paginate(d.db.Model(&Recommendation{}), page, size, orderExpr)
}

// ListFiltered applies equality filters for market and status when they are
// non-nil. Results are ordered by recommendation date, newest first.
func (d *Database) ListFiltered(market *types.Market, status *types.RecommendationStatus, page, size int) ([]Recommendation, int64, error) {
	query := d.db.Model(&Recommendation{})
	if market != nil {
		query = query.Where("market = ?", *market)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	return d.paginate(query, page, size, "recommendation_date DESC")
}

// ListByDateRange returns recommendations whose recommendation date falls in
// [start, end], newest first.
func (d *Database) ListByDateRange(start, end types.Date, page, size int) ([]Recommendation, int64, error) {
	query := d.db.Model(&Recommendation{}).
		Where("recommendation_date BETWEEN ? AND ?", start, end)
	return d.paginate(query, page, size, "recommendation_date DESC")
}

// ListByTicker returns every recommendation for the given ticker symbol,
// newest first. Ticker symbols are stored upper-cased.
func (d *Database) ListByTicker(symbol string) ([]Recommendation, error) {
	var recs []Recommendation
	err := d.db.Where("ticker_symbol = ?", symbol).
		Order("recommendation_date DESC").
		Find(&recs).Error
	return recs, err
}

func (d *Database) paginate(query *gorm.DB, page, size int, orderExpr string) ([]Recommendation, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []Recommendation
	err := query.Session(&gorm.Session{}).
		Order(orderExpr).
		Offset(page * size).
		Limit(size).
		Find(&recs).Error
	if err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}
