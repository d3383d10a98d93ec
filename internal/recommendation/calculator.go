package recommendation

import (
	"github.com/shopspring/decimal"

	"github.com/confiance/investment-api/internal/types"
)

var hundred = decimal.NewFromInt(100)

// computeDerived refreshes the stored derived fields. It runs on every
// create and update, before persistence.
func computeDerived(rec *Recommendation) {
	rec.RiskRewardRatio = riskRewardRatio(rec.EntryPrice, rec.TargetPrice, rec.StopLoss)
	rec.HoldingPeriodDays = holdingPeriodDays(rec.RecommendationDate, rec.ExitDate)
}

// riskRewardRatio returns (target - entry) / (entry - stop) rounded half-up
// to two decimal places. The ratio is absent unless target and stop are both
// present and the risk (entry - stop) is strictly positive.
func riskRewardRatio(entry decimal.Decimal, target, stop decimal.NullDecimal) decimal.NullDecimal {
	if !target.Valid || !stop.Valid {
		return decimal.NullDecimal{}
	}
	risk := entry.Sub(stop.Decimal)
	if risk.Sign() <= 0 {
		return decimal.NullDecimal{}
	}
	reward := target.Decimal.Sub(entry)
	return decimal.NewNullDecimal(reward.DivRound(risk, 2))
}

// holdingPeriodDays returns the signed day count from the recommendation date
// to the exit date. A negative count (exit before recommendation) is kept
// as-is.
func holdingPeriodDays(recommended types.Date, exit *types.Date) *int {
	if exit == nil || recommended.IsZero() {
		return nil
	}
	days := recommended.DaysUntil(*exit)
	return &days
}

// potentialReturn is target - entry, absent when there is no target price.
func potentialReturn(entry decimal.Decimal, target decimal.NullDecimal) decimal.NullDecimal {
	if !target.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(target.Decimal.Sub(entry))
}

// potentialReturnPercentage is the potential return as a percentage of the
// entry price: divided at four decimal places, scaled by 100, then rounded to
// two, half-up throughout. Absent when the return is absent or the entry
// price is zero.
func potentialReturnPercentage(entry decimal.Decimal, ret decimal.NullDecimal) decimal.NullDecimal {
	if !ret.Valid || entry.IsZero() {
		return decimal.NullDecimal{}
	}
	pct := ret.Decimal.DivRound(entry, 4).Mul(hundred).Round(2)
	return decimal.NewNullDecimal(pct)
}

// potentialRisk is entry - stop, absent when there is no stop loss. It may be
// negative when the stop sits above the entry price.
func potentialRisk(entry decimal.Decimal, stop decimal.NullDecimal) decimal.NullDecimal {
	if !stop.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(entry.Sub(stop.Decimal))
}
