package models

import "time"

// Task is a unit of remote work: run the linked test configuration and
// report back. Created by a user; the run-outcome timestamps are mutated by
// whichever worker last executed it.
type Task struct {
	Identity
	Timestamps
	Owned
	AuditTrail
	TestLink

	DateLastFailure *time.Time `gorm:"column:date_last_failure" json:"date_last_failure"`
	DateLastSuccess *time.Time `gorm:"column:date_last_success" json:"date_last_success"`
	DateLastRan     *time.Time `gorm:"column:date_last_ran" json:"date_last_ran"`
}

func (Task) TableName() string {
	return "tasks"
}
