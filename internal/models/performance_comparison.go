package models

import "time"

// PerformanceComparison validates neural-network recommendations against the
// market movement actually seen over the sampled window. Write-once
// analytical ledger: recomputation appends a new row, it never mutates an
// old one. Carries both ownership and audit-deletion tracking.
type PerformanceComparison struct {
	Identity
	Timestamps
	Owned
	AuditTrail

	ActualMovement           float64    `gorm:"column:actual_movement" json:"actual_movement"`
	Delta                    float64    `gorm:"column:delta" json:"delta"`
	DirectionallySame        bool       `gorm:"column:directionally_same" json:"directionally_same"`
	NeuralNetworkRec         float64    `gorm:"column:neural_network_rec" json:"neural_network_rec"`
	PercentBuy               float64    `gorm:"column:percent_buy" json:"percent_buy"`
	PercentHold              float64    `gorm:"column:percent_hold" json:"percent_hold"`
	PercentSell              float64    `gorm:"column:percent_sell" json:"percent_sell"`
	PriceTimeRangeStart      *time.Time `gorm:"column:price_time_range_start" json:"price_time_range_start"`
	PriceTimeRangeEnd        *time.Time `gorm:"column:price_time_range_end" json:"price_time_range_end"`
	TrTimeRangeStart         *time.Time `gorm:"column:tr_time_range_start" json:"tr_time_range_start"`
	TrTimeRangeEnd           *time.Time `gorm:"column:tr_time_range_end" json:"tr_time_range_end"`
	RecommendationCount      int        `gorm:"column:recommendation_count" json:"recommendation_count"`
	WeightedAverageNeuralRec float64    `gorm:"column:weighted_average_neural_rec" json:"weighted_average_neural_rec"`

	RecommendationID *uint                `gorm:"column:recommendation_id" json:"recommendation_id"`
	SymbolPairID     *uint                `gorm:"column:symbol_pair_id" json:"symbol_pair_id"`
	Recommendation   *TradeRecommendation `gorm:"foreignKey:RecommendationID" json:"-"`
	SymbolPair       *SymbolPair          `gorm:"foreignKey:SymbolPairID" json:"-"`
}

func (PerformanceComparison) TableName() string {
	return "performance_comparison"
}
