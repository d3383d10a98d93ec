package recommendation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/confiance/investment-api/internal/types"
)

const maxRemarksLength = 1000

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

// Recommendation is a stored stock recommendation. RiskRewardRatio and
// HoldingPeriodDays are computed by the service on every write; the service
// must stay the single write path or they go stale.
type Recommendation struct {
	ID                 uint                       `gorm:"primaryKey" json:"id"`
	Market             types.Market               `gorm:"size:10;not null;index" json:"market"`
	Currency           string                     `gorm:"size:10;not null" json:"currency"`
	TickerSymbol       string                     `gorm:"size:20;not null;index" json:"ticker_symbol"`
	CompanyName        string                     `gorm:"size:255" json:"company_name,omitempty"`
	TradeType          types.TradeType            `gorm:"size:10;not null" json:"trade_type"`
	RecommendationDate types.Date                 `gorm:"not null;index" json:"recommendation_date"`
	EntryPrice         decimal.Decimal            `gorm:"type:decimal(19,2);not null" json:"entry_price"`
	TargetPrice        decimal.NullDecimal        `gorm:"type:decimal(19,2)" json:"target_price"`
	StopLoss           decimal.NullDecimal        `gorm:"type:decimal(19,2)" json:"stop_loss"`
	RiskRewardRatio    decimal.NullDecimal        `gorm:"type:decimal(5,2)" json:"risk_reward_ratio"`
	SellPrice          decimal.NullDecimal        `gorm:"type:decimal(19,2)" json:"sell_price"`
	ExitDate           *types.Date                `json:"exit_date"`
	HoldingPeriodDays  *int                       `json:"holding_period_days"`
	Status             types.RecommendationStatus `gorm:"size:20;not null;index" json:"status"`
	Remarks            string                     `gorm:"size:1000" json:"remarks,omitempty"`
	CreatedByUserID    *int64                     `json:"created_by_user_id"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

// CreateRequest is the inbound shape for creating a recommendation.
// RecommendationDate defaults to today and Status to OPEN when omitted.
type CreateRequest struct {
	Market             types.Market               `json:"market"`
	Currency           string                     `json:"currency"`
	TickerSymbol       string                     `json:"ticker_symbol"`
	CompanyName        string                     `json:"company_name"`
	TradeType          types.TradeType            `json:"trade_type"`
	RecommendationDate *types.Date                `json:"recommendation_date"`
	EntryPrice         *decimal.Decimal           `json:"entry_price"`
	TargetPrice        *decimal.Decimal           `json:"target_price"`
	StopLoss           *decimal.Decimal           `json:"stop_loss"`
	SellPrice          *decimal.Decimal           `json:"sell_price"`
	ExitDate           *types.Date                `json:"exit_date"`
	Status             types.RecommendationStatus `json:"status"`
	Remarks            string                     `json:"remarks"`
}

// Validate enforces the boundary constraints before the request reaches the
// service. Each failure names the offending field.
func (r *CreateRequest) Validate() error {
	if r.Market == "" {
		return types.NewValidation("market", "market is required")
	}
	if !r.Market.Valid() {
		return types.NewValidation("market", "unknown market: "+r.Market.String())
	}
	if r.Currency == "" {
		return types.NewValidation("currency", "currency is required")
	}
	if r.TickerSymbol == "" {
		return types.NewValidation("ticker_symbol", "ticker symbol is required")
	}
	if r.TradeType == "" {
		return types.NewValidation("trade_type", "trade type is required")
	}
	if !r.TradeType.Valid() {
		return types.NewValidation("trade_type", "unknown trade type: "+r.TradeType.String())
	}
	if r.EntryPrice == nil {
		return types.NewValidation("entry_price", "entry price is required")
	}
	if r.EntryPrice.Sign() <= 0 {
		return types.NewValidation("entry_price", "entry price must be positive")
	}
	if r.TargetPrice != nil && r.TargetPrice.Sign() <= 0 {
		return types.NewValidation("target_price", "target price must be positive")
	}
	if r.StopLoss != nil && r.StopLoss.Sign() <= 0 {
		return types.NewValidation("stop_loss", "stop loss must be positive")
	}
	if r.Status != "" && !r.Status.Valid() {
		return types.NewValidation("status", "unknown status: "+r.Status.String())
	}
	if len(r.Remarks) > maxRemarksLength {
		return types.NewValidation("remarks", "remarks must not exceed 1000 characters")
	}
	return nil
}

// UpdateRequest is the inbound shape for updating a recommendation. Every
// field is a pointer: nil means "not sent, leave unchanged". A field present
// in the request overwrites the stored value; there is no way to clear a
// stored field by omission.
type UpdateRequest struct {
	Market             *types.Market               `json:"market"`
	Currency           *string                     `json:"currency"`
	TickerSymbol       *string                     `json:"ticker_symbol"`
	CompanyName        *string                     `json:"company_name"`
	TradeType          *types.TradeType            `json:"trade_type"`
	RecommendationDate *types.Date                 `json:"recommendation_date"`
	EntryPrice         *decimal.Decimal            `json:"entry_price"`
	TargetPrice        *decimal.Decimal            `json:"target_price"`
	StopLoss           *decimal.Decimal            `json:"stop_loss"`
	SellPrice          *decimal.Decimal            `json:"sell_price"`
	ExitDate           *types.Date                 `json:"exit_date"`
	Status             *types.RecommendationStatus `json:"status"`
	Remarks            *string                     `json:"remarks"`
}

// Validate checks only the fields present in the request.
func (r *UpdateRequest) Validate() error {
	if r.Market != nil && !r.Market.Valid() {
		return types.NewValidation("market", "unknown market: "+r.Market.String())
	}
	if r.Currency != nil && *r.Currency == "" {
		return types.NewValidation("currency", "currency must not be blank")
	}
	if r.TickerSymbol != nil && *r.TickerSymbol == "" {
		return types.NewValidation("ticker_symbol", "ticker symbol must not be blank")
	}
	if r.TradeType != nil && !r.TradeType.Valid() {
		return types.NewValidation("trade_type", "unknown trade type: "+r.TradeType.String())
	}
	if r.EntryPrice != nil && r.EntryPrice.Sign() <= 0 {
		return types.NewValidation("entry_price", "entry price must be positive")
	}
	if r.TargetPrice != nil && r.TargetPrice.Sign() <= 0 {
		return types.NewValidation("target_price", "target price must be positive")
	}
	if r.StopLoss != nil && r.StopLoss.Sign() <= 0 {
		return types.NewValidation("stop_loss", "stop loss must be positive")
	}
	if r.Status != nil && !r.Status.Valid() {
		return types.NewValidation("status", "unknown status: "+r.Status.String())
	}
	if r.Remarks != nil && len(*r.Remarks) > maxRemarksLength {
		return types.NewValidation("remarks", "remarks must not exceed 1000 characters")
	}
	return nil
}

// Response is the outbound view of a recommendation: every stored field plus
// the presentation-only derived fields, which are recomputed on each read and
// never persisted.
type Response struct {
	ID                 uint                       `json:"id"`
	Market             types.Market               `json:"market"`
	Currency           string                     `json:"currency"`
	TickerSymbol       string                     `json:"ticker_symbol"`
	CompanyName        string                     `json:"company_name,omitempty"`
	TradeType          types.TradeType            `json:"trade_type"`
	RecommendationDate types.Date                 `json:"recommendation_date"`
	EntryPrice         decimal.Decimal            `json:"entry_price"`
	TargetPrice        decimal.NullDecimal        `json:"target_price"`
	StopLoss           decimal.NullDecimal        `json:"stop_loss"`
	RiskRewardRatio    decimal.NullDecimal        `json:"risk_reward_ratio"`
	SellPrice          decimal.NullDecimal        `json:"sell_price"`
	ExitDate           *types.Date                `json:"exit_date"`
	HoldingPeriodDays  *int                       `json:"holding_period_days"`
	Status             types.RecommendationStatus `json:"status"`
	Remarks            string                     `json:"remarks,omitempty"`
	CreatedByUserID    *int64                     `json:"created_by_user_id"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`

	PotentialReturn           decimal.NullDecimal `json:"potential_return"`
	PotentialReturnPercentage decimal.NullDecimal `json:"potential_return_percentage"`
	PotentialRisk             decimal.NullDecimal `json:"potential_risk"`
}

func newResponse(rec *Recommendation) *Response {
	resp := &Response{
		ID:                 rec.ID,
		Market:             rec.Market,
		Currency:           rec.Currency,
		TickerSymbol:       rec.TickerSymbol,
		CompanyName:        rec.CompanyName,
		TradeType:          rec.TradeType,
		RecommendationDate: rec.RecommendationDate,
		EntryPrice:         rec.EntryPrice,
		TargetPrice:        rec.TargetPrice,
		StopLoss:           rec.StopLoss,
		RiskRewardRatio:    rec.RiskRewardRatio,
		SellPrice:          rec.SellPrice,
		ExitDate:           rec.ExitDate,
		HoldingPeriodDays:  rec.HoldingPeriodDays,
		Status:             rec.Status,
		Remarks:            rec.Remarks,
		CreatedByUserID:    rec.CreatedByUserID,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}

	resp.PotentialReturn = potentialReturn(rec.EntryPrice, rec.TargetPrice)
	resp.PotentialReturnPercentage = potentialReturnPercentage(rec.EntryPrice, resp.PotentialReturn)
	resp.PotentialRisk = potentialRisk(rec.EntryPrice, rec.StopLoss)

	return resp
}
