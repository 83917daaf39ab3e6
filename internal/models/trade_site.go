package models

// TradeSite lists the sites we permit data retrieval and/or trading at.
// Static reference data.
type TradeSite struct {
	Identity
	Timestamps

	Name   string `gorm:"column:name;size:256" json:"name"`
	APIURI string `gorm:"column:api_uri;size:256" json:"api_uri"`
	URI    string `gorm:"column:uri;size:256" json:"uri"`
}

func (TradeSite) TableName() string {
	return "trade_sites"
}

// SymbolPair is a tradable pair at a site, e.g. BTC/USD.
type SymbolPair struct {
	Identity
	Timestamps

	BaseSymbol  string `gorm:"column:base_symbol;size:16" json:"base_symbol"`
	QuoteSymbol string `gorm:"column:quote_symbol;size:16" json:"quote_symbol"`

	SiteID *uint      `gorm:"column:site_id" json:"site_id"`
	Site   *TradeSite `gorm:"foreignKey:SiteID" json:"site,omitempty"`
}

func (SymbolPair) TableName() string {
	return "symbol_pairs"
}
