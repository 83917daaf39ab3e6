package models

import "time"

// Worker is a remote process that pulls tasks and logs work back into the
// system. LastCheckIn and TasksComplete are mutated by the worker itself
// through the self-report path, not by the owning user.
type Worker struct {
	Identity
	Timestamps
	Owned

	IPAddress     string     `gorm:"column:ip_address;size:45" json:"ip_address"`
	LastCheckIn   *time.Time `gorm:"column:last_check_in" json:"last_check_in"`
	TasksComplete int        `gorm:"column:tasks_complete;not null;default:0" json:"tasks_complete"`

	TaskID *uint `gorm:"column:task_id" json:"task_id"`
	Task   *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

func (Worker) TableName() string {
	return "workers"
}
