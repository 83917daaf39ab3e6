package models

// TestConfigurationBase holds the parameters shared by classifier and
// prediction tests: what data to pull, at what resolution, from where.
// Carries full audit-deletion tracking.
type TestConfigurationBase struct {
	Identity
	Timestamps
	AuditTrail

	TestKind          TestKind `gorm:"column:test_type;size:16" json:"test_type"`
	DataSetInputs     int      `gorm:"column:data_set_inputs" json:"data_set_inputs"`
	Granularity       int      `gorm:"column:granularity" json:"granularity"`
	MinutesBack       int      `gorm:"column:minutes_back" json:"minutes_back"`
	TrainingSetLength int      `gorm:"column:training_set_length" json:"training_set_length"`

	SiteID       *uint       `gorm:"column:site_id" json:"site_id"`
	SymbolPairID *uint       `gorm:"column:symbol_pair_id" json:"symbol_pair_id"`
	Site         *TradeSite  `gorm:"foreignKey:SiteID" json:"site,omitempty"`
	SymbolPair   *SymbolPair `gorm:"foreignKey:SymbolPairID" json:"symbol_pair,omitempty"`
}

func (TestConfigurationBase) TableName() string {
	return "base_tests"
}

// PredictionTestConfiguration is a base configuration plus the
// neural-network hyperparameters. Specialization is plain composition: the
// base row is referenced, not inherited.
type PredictionTestConfiguration struct {
	Identity
	Timestamps

	PredictionKind PredictionKind `gorm:"column:prediction_type;size:64" json:"prediction_type"`
	Bias           bool           `gorm:"column:bias" json:"bias"`
	Recurrent      bool           `gorm:"column:recurrent" json:"recurrent"`
	WeightDecay    float64        `gorm:"column:weight_decay" json:"weight_decay"`
	HiddenNeurons  int            `gorm:"column:hidden_neurons" json:"hidden_neurons"`
	Epochs         int            `gorm:"column:epochs" json:"epochs"`
	Momentum       float64        `gorm:"column:momentum" json:"momentum"`
	LearningRate   float64        `gorm:"column:learning_rate" json:"learning_rate"`

	BaseID uint                   `gorm:"column:base_id;not null" json:"base_id"`
	Base   *TestConfigurationBase `gorm:"foreignKey:BaseID" json:"base,omitempty"`
}

func (PredictionTestConfiguration) TableName() string {
	return "prediction_tests"
}

// ClassifierTestConfiguration is the classifier-family counterpart. It
// carries no extra hyperparameters yet, only the base linkage.
type ClassifierTestConfiguration struct {
	Identity
	Timestamps

	BaseID uint                   `gorm:"column:base_id;not null" json:"base_id"`
	Base   *TestConfigurationBase `gorm:"foreignKey:BaseID" json:"base,omitempty"`
}

func (ClassifierTestConfiguration) TableName() string {
	return "classifier_tests"
}
