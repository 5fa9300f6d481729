package model

import "strings"

// BackupJob describes one configured backup: what to copy, where the
// snapshots live, and which mountpoint gates the run. Records are treated
// as immutable once loaded; derive working copies instead of mutating.
type BackupJob struct {
	Name        string `mapstructure:"name"`
	Source      string `mapstructure:"source"`
	Target      string `mapstructure:"target"`
	Mountpoint  string `mapstructure:"mountpoint"`
	ExcludeFrom string `mapstructure:"exclude_from"`
	StatDir     string `mapstructure:"stat_dir"`
}

// Normalized returns a copy whose source path ends in a path separator, so
// rsync copies the directory contents rather than the directory itself.
func (j BackupJob) Normalized() BackupJob {
	if !strings.HasSuffix(j.Source, "/") {
		j.Source += "/"
	}
	return j
}
