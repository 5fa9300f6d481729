package model

import (
	"time"

	"gorm.io/gorm"
)

type RunStatus string

const (
	RunSuccess RunStatus = "SUCCESS"
	RunFailed  RunStatus = "FAILED"
)

// Run is one recorded backup pass, successful or not. The run log on the
// backup drive holds the rsync output; this row is the queryable summary
// that survives on the internal disk.
type Run struct {
	gorm.Model
	JobName   string    `gorm:"not null"`
	Snapshot  string    `gorm:"not null"`
	LinkBase  string
	Status    RunStatus `gorm:"not null"`
	ExitCode  int
	LogPath   string
	Duration  time.Duration
	StartedAt time.Time `gorm:"not null"`
}
