package models

import "time"

// TradeRecommendation is a single buy/hold/sell signal emitted by a trained
// network for a symbol pair, valid over a bounded window. Append-only.
type TradeRecommendation struct {
	Identity
	Timestamps

	Value      float64    `gorm:"column:value" json:"value"`
	ValidFrom  *time.Time `gorm:"column:valid_from" json:"valid_from"`
	ValidUntil *time.Time `gorm:"column:valid_until" json:"valid_until"`

	SymbolPairID *uint       `gorm:"column:symbol_pair_id" json:"symbol_pair_id"`
	SymbolPair   *SymbolPair `gorm:"foreignKey:SymbolPairID" json:"-"`
}

func (TradeRecommendation) TableName() string {
	return "trade_recommendations"
}
