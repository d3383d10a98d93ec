package recommendation

import (
	"strings"

	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/confiance/investment-api/internal/config"
	"github.com/confiance/investment-api/internal/types"
)

// sortableColumns maps caller-supplied sort field names onto entity columns.
// Anything else falls back to the configured default, so raw request input
// never reaches the ORDER BY clause.
var sortableColumns = map[string]string{
	"id":                  "id",
	"market":              "market",
	"status":              "status",
	"recommendation_date": "recommendation_date",
	"recommendationDate":  "recommendation_date",
	"entry_price":         "entry_price",
	"entryPrice":          "entry_price",
	"ticker_symbol":       "ticker_symbol",
	"tickerSymbol":        "ticker_symbol",
	"created_at":          "created_at",
	"createdAt":           "created_at",
}

// Service orchestrates the recommendation lifecycle: defaults, derived-field
// computation and persistence.
type Service struct {
	db  *Database
	cfg *config.Config
}

func NewService(gormDB *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:  NewDatabase(gormDB),
		cfg: cfg,
	}
}

// Create persists a new recommendation. The recommendation date defaults to
// today and the status to OPEN when omitted; the ticker symbol is stored
// upper-cased. Derived fields are computed before the write.
func (s *Service) Create(req *CreateRequest, userID *int64) (*Response, error) {
	rec := &Recommendation{
		Market:          req.Market,
		Currency:        req.Currency,
		TickerSymbol:    strings.ToUpper(req.TickerSymbol),
		CompanyName:     req.CompanyName,
		TradeType:       req.TradeType,
		EntryPrice:      *req.EntryPrice,
		ExitDate:        req.ExitDate,
		Status:          req.Status,
		Remarks:         req.Remarks,
		CreatedByUserID: userID,
	}
	if req.RecommendationDate != nil {
		rec.RecommendationDate = *req.RecommendationDate
	} else {
		rec.RecommendationDate = types.Today()
	}
	if rec.Status == "" {
		rec.Status = types.StatusOpen
	}
	rec.TargetPrice = toNullDecimal(req.TargetPrice)
	rec.StopLoss = toNullDecimal(req.StopLoss)
	rec.SellPrice = toNullDecimal(req.SellPrice)

	computeDerived(rec)

	if err := s.db.Create(rec); err != nil {
		return nil, err
	}

	zlog.Info().
		Uint("id", rec.ID).
		Str("ticker", rec.TickerSymbol).
		Interface("user_id", userID).
		Msg("Created recommendation")

	return newResponse(rec), nil
}

// Update overwrites only the fields present in the request; omitted fields
// are left untouched. Derived fields are recomputed before persisting.
// Concurrent updates to the same id are last-writer-wins.
func (s *Service) Update(id uint, req *UpdateRequest) (*Response, error) {
	rec, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if req.Market != nil {
		rec.Market = *req.Market
	}
	if req.Currency != nil {
		rec.Currency = *req.Currency
	}
	if req.TickerSymbol != nil {
		rec.TickerSymbol = strings.ToUpper(*req.TickerSymbol)
	}
	if req.CompanyName != nil {
		rec.CompanyName = *req.CompanyName
	}
	if req.TradeType != nil {
		rec.TradeType = *req.TradeType
	}
	if req.RecommendationDate != nil {
		rec.RecommendationDate = *req.RecommendationDate
	}
	if req.EntryPrice != nil {
		rec.EntryPrice = *req.EntryPrice
	}
	if req.TargetPrice != nil {
		rec.TargetPrice = toNullDecimal(req.TargetPrice)
	}
	if req.StopLoss != nil {
		rec.StopLoss = toNullDecimal(req.StopLoss)
	}
	if req.SellPrice != nil {
		rec.SellPrice = toNullDecimal(req.SellPrice)
	}
	if req.ExitDate != nil {
		rec.ExitDate = req.ExitDate
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	if req.Remarks != nil {
		rec.Remarks = *req.Remarks
	}

	computeDerived(rec)

	if err := s.db.Save(rec); err != nil {
		return nil, err
	}

	zlog.Info().Uint("id", rec.ID).Msg("Updated recommendation")

	return newResponse(rec), nil
}

// GetByID returns a *types.NotFoundError when the id does not exist.
func (s *Service) GetByID(id uint) (*Response, error) {
	rec, err := s.findByID(id)
	if err != nil {
		return nil, err
	}
	return newResponse(rec), nil
}

// List returns one page of all recommendations sorted by the given field and
// direction. Unknown sort fields fall back to the configured default; any
// direction other than "asc" (case-insensitive) means descending.
func (s *Service) List(page, size int, sortBy, sortDir string) (*types.Page[Response], error) {
	page, size = s.clampPaging(page, size)

	column, ok := sortableColumns[sortBy]
	if !ok {
		column = s.cfg.DefaultSortField
	}
	dir := "DESC"
	if strings.EqualFold(sortDir, "asc") {
		dir = "ASC"
	}

	recs, total, err := s.db.List(page, size, column+" "+dir)
	if err != nil {
		return nil, err
	}
	return s.buildPage(recs, page, size, total), nil
}

// ListFiltered filters by market and/or status when provided; both nil means
// all records. Ordered by recommendation date, newest first.
func (s *Service) ListFiltered(market *types.Market, status *types.RecommendationStatus, page, size int) (*types.Page[Response], error) {
	page, size = s.clampPaging(page, size)
	recs, total, err := s.db.ListFiltered(market, status, page, size)
	if err != nil {
		return nil, err
	}
	return s.buildPage(recs, page, size, total), nil
}

// ListOpen is shorthand for ListFiltered(status=OPEN).
func (s *Service) ListOpen(page, size int) (*types.Page[Response], error) {
	open := types.StatusOpen
	return s.ListFiltered(nil, &open, page, size)
}

// ListByMarket is shorthand for ListFiltered(market=market).
func (s *Service) ListByMarket(market types.Market, page, size int) (*types.Page[Response], error) {
	return s.ListFiltered(&market, nil, page, size)
}

// ListByDateRange returns recommendations dated within [start, end], newest
// first.
func (s *Service) ListByDateRange(start, end types.Date, page, size int) (*types.Page[Response], error) {
	page, size = s.clampPaging(page, size)
	recs, total, err := s.db.ListByDateRange(start, end, page, size)
	if err != nil {
		return nil, err
	}
	return s.buildPage(recs, page, size, total), nil
}

// ListByTicker returns every recommendation for a ticker symbol. The lookup
// is normalized to upper case to match storage.
func (s *Service) ListByTicker(symbol string) ([]Response, error) {
	recs, err := s.db.ListByTicker(strings.ToUpper(symbol))
	if err != nil {
		return nil, err
	}
	responses := make([]Response, 0, len(recs))
	for i := range recs {
		responses = append(responses, *newResponse(&recs[i]))
	}
	return responses, nil
}

// Delete removes a recommendation permanently.
func (s *Service) Delete(id uint) error {
	rec, err := s.findByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(rec); err != nil {
		return err
	}
	zlog.Info().Uint("id", id).Msg("Deleted recommendation")
	return nil
}

func (s *Service) findByID(id uint) (*Recommendation, error) {
	rec, err := s.db.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, types.NewNotFound("Recommendation", "id", id)
	}
	return rec, nil
}

func (s *Service) clampPaging(page, size int) (int, int) {
	if page < 0 {
		page = s.cfg.DefaultPage
	}
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	return page, size
}

func (s *Service) buildPage(recs []Recommendation, page, size int, total int64) *types.Page[Response] {
	content := make([]Response, 0, len(recs))
	for i := range recs {
		content = append(content, *newResponse(&recs[i]))
	}
	return types.NewPage(content, page, size, total)
}
