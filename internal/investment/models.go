package investment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/confiance/investment-api/internal/types"
)

// Product is an investment product on offer. Unlike recommendations it has no
// derived fields; this resource is a plain persistence round-trip.
type Product struct {
	ID                 uint                   `gorm:"primaryKey" json:"id"`
	Name               string                 `gorm:"size:255;not null" json:"name"`
	Description        string                 `gorm:"size:1000" json:"description,omitempty"`
	Type               types.InvestmentType   `gorm:"size:20;not null" json:"type"`
	ExpectedReturns    decimal.Decimal        `gorm:"type:decimal(5,2);not null" json:"expected_returns"`
	MinInvestment      decimal.Decimal        `gorm:"type:decimal(19,2);not null" json:"min_investment"`
	MaxInvestment      decimal.NullDecimal    `gorm:"type:decimal(19,2)" json:"max_investment"`
	LockInPeriodMonths int                    `gorm:"not null" json:"lock_in_period_months"`
	Status             types.InvestmentStatus `gorm:"size:20;not null" json:"status"`
	CreatedAt          time.Time              `json:"created_at"`
}

// CreateRequest is the inbound shape for creating an investment product.
type CreateRequest struct {
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	Type               types.InvestmentType   `json:"type"`
	ExpectedReturns    *decimal.Decimal       `json:"expected_returns"`
	MinInvestment      *decimal.Decimal       `json:"min_investment"`
	MaxInvestment      *decimal.Decimal       `json:"max_investment"`
	LockInPeriodMonths *int                   `json:"lock_in_period_months"`
	Status             types.InvestmentStatus `json:"status"`
}

func (r *CreateRequest) Validate() error {
	if r.Name == "" {
		return types.NewValidation("name", "name is required")
	}
	if r.Type == "" {
		return types.NewValidation("type", "type is required")
	}
	if !r.Type.Valid() {
		return types.NewValidation("type", "unknown investment type: "+string(r.Type))
	}
	if r.ExpectedReturns == nil {
		return types.NewValidation("expected_returns", "expected returns is required")
	}
	if r.MinInvestment == nil {
		return types.NewValidation("min_investment", "minimum investment is required")
	}
	if r.MinInvestment.Sign() <= 0 {
		return types.NewValidation("min_investment", "minimum investment must be positive")
	}
	if r.MaxInvestment != nil && r.MaxInvestment.Sign() <= 0 {
		return types.NewValidation("max_investment", "maximum investment must be positive")
	}
	if r.LockInPeriodMonths == nil {
		return types.NewValidation("lock_in_period_months", "lock-in period is required")
	}
	if *r.LockInPeriodMonths < 0 {
		return types.NewValidation("lock_in_period_months", "lock-in period must not be negative")
	}
	if r.Status == "" {
		return types.NewValidation("status", "status is required")
	}
	if !r.Status.Valid() {
		return types.NewValidation("status", "unknown status: "+string(r.Status))
	}
	return nil
}
