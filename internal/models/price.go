package models

import "time"

// Price is one ticker observation from an upstream feed.
type Price struct {
	Identity
	Timestamps

	Symbol     string    `gorm:"column:symbol;size:32;index" json:"symbol"`
	Price      float64   `gorm:"column:price" json:"price"`
	Volume     float64   `gorm:"column:volume" json:"volume"`
	LowestAsk  float64   `gorm:"column:lowest_ask" json:"lowest_ask"`
	HighestBid float64   `gorm:"column:highest_bid" json:"highest_bid"`
	ObservedAt time.Time `gorm:"column:observed_at;index" json:"observed_at"`
}

func (Price) TableName() string {
	return "prices"
}
