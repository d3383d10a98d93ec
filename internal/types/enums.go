package types

import "strings"

// Market is the closed set of trading venues a recommendation can target.
type Market string

const (
	MarketNSE    Market = "NSE"
	MarketBSE    Market = "BSE"
	MarketNYSE   Market = "NYSE"
	MarketNASDAQ Market = "NASDAQ"
)

func (m Market) String() string { return string(m) }

func (m Market) Valid() bool {
	switch m {
	case MarketNSE, MarketBSE, MarketNYSE, MarketNASDAQ:
		return true
	default:
		return false
	}
}

func ParseMarket(s string) (Market, bool) {
	m := Market(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.Valid()
}

// TradeType is the direction of a recommendation.
type TradeType string

const (
	TradeTypeBuy  TradeType = "BUY"
	TradeTypeSell TradeType = "SELL"
	TradeTypeHold TradeType = "HOLD"
)

func (t TradeType) String() string { return string(t) }

func (t TradeType) Valid() bool {
	switch t {
	case TradeTypeBuy, TradeTypeSell, TradeTypeHold:
		return true
	default:
		return false
	}
}

// RecommendationStatus is the lifecycle state of a recommendation.
type RecommendationStatus string

const (
	StatusOpen           RecommendationStatus = "OPEN"
	StatusTargetAchieved RecommendationStatus = "TARGET_ACHIEVED"
	StatusStopLossHit    RecommendationStatus = "STOP_LOSS_HIT"
	StatusClosed         RecommendationStatus = "CLOSED"
)

func (s RecommendationStatus) String() string { return string(s) }

func (s RecommendationStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusTargetAchieved, StatusStopLossHit, StatusClosed:
		return true
	default:
		return false
	}
}

func ParseRecommendationStatus(s string) (RecommendationStatus, bool) {
	st := RecommendationStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}

// InvestmentType classifies an investment product.
type InvestmentType string

const (
	InvestmentMutualFund   InvestmentType = "MUTUAL_FUND"
	InvestmentFixedDeposit InvestmentType = "FIXED_DEPOSIT"
	InvestmentBonds        InvestmentType = "BONDS"
	InvestmentGold         InvestmentType = "GOLD"
	InvestmentEquity       InvestmentType = "EQUITY"
)

func (t InvestmentType) Valid() bool {
	switch t {
	case InvestmentMutualFund, InvestmentFixedDeposit, InvestmentBonds, InvestmentGold, InvestmentEquity:
		return true
	default:
		return false
	}
}

// InvestmentStatus is the availability state of an investment product.
type InvestmentStatus string

const (
	InvestmentActive   InvestmentStatus = "ACTIVE"
	InvestmentInactive InvestmentStatus = "INACTIVE"
	InvestmentClosed   InvestmentStatus = "CLOSED"
)

func (s InvestmentStatus) Valid() bool {
	switch s {
	case InvestmentActive, InvestmentInactive, InvestmentClosed:
		return true
	default:
		return false
	}
}
