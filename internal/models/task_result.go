package models

// TaskResult is the outcome of one task execution by one worker. Rows are
// append-only: a worker reporting a result creates exactly one new row per
// execution and never updates an existing one. ExecutionToken makes retried
// reports of the same execution idempotent.
type TaskResult struct {
	Identity
	Timestamps
	TestLink

	ExecutionToken  string  `gorm:"column:execution_token;size:36;uniqueIndex" json:"execution_token"`
	AverageDiff     float64 `gorm:"column:average_diff" json:"average_diff"`
	Output          string  `gorm:"column:output;type:text" json:"output"`
	PercentCorrect  int     `gorm:"column:percent_correct" json:"percent_correct"`
	PredictionSize  int     `gorm:"column:prediction_size" json:"prediction_size"`
	ProfitLossFloat float64 `gorm:"column:profit_loss_float" json:"profit_loss_float"`
	ProfitLossInt   int64   `gorm:"column:profit_loss_int" json:"profit_loss_int"`
	RunTime         float64 `gorm:"column:run_time" json:"run_time"`
	Score           int     `gorm:"column:score" json:"score"`

	WorkerID uint    `gorm:"column:worker_id;not null" json:"worker_id"`
	TaskID   uint    `gorm:"column:task_id;not null" json:"task_id"`
	Worker   *Worker `gorm:"foreignKey:WorkerID" json:"-"`
	Task     *Task   `gorm:"foreignKey:TaskID" json:"-"`
}

func (TaskResult) TableName() string {
	return "task_results"
}
