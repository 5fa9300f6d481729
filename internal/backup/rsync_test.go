package backup

import (
	"reflect"
	"testing"

	"linkbak/internal/model"
)

func TestRsyncArgs(t *testing.T) {
	base := model.BackupJob{
		Name:   "j1",
		Source: "/src/",
		Target: "/dst/j1",
	}
	fixed := []string{"-a", "-v", "--stats", "-x", "--delete", "--delete-excluded"}

	tests := []struct {
		name     string
		job      model.BackupJob
		linkBase string
		want     []string
	}{
		{
			"first backup, no excludes",
			base, "",
			append(append([]string{}, fixed...), "/src/", "/dst/j1/ts_incomplete"),
		},
		{
			"with link base",
			base, "/dst/j1/2024-01-01_00-00-00",
			append(append([]string{}, fixed...),
				"--link-dest=/dst/j1/2024-01-01_00-00-00",
				"/src/", "/dst/j1/ts_incomplete"),
		},
		{
			"with exclude file",
			model.BackupJob{Name: "j1", Source: "/src/", Target: "/dst/j1", ExcludeFrom: "/etc/backup.exclude"},
			"",
			append(append([]string{}, fixed...),
				"--exclude-from=/etc/backup.exclude",
				"/src/", "/dst/j1/ts_incomplete"),
		},
		{
			"exclude file before link base",
			model.BackupJob{Name: "j1", Source: "/src/", Target: "/dst/j1", ExcludeFrom: "/etc/backup.exclude"},
			"/dst/j1/2024-01-01_00-00-00",
			append(append([]string{}, fixed...),
				"--exclude-from=/etc/backup.exclude",
				"--link-dest=/dst/j1/2024-01-01_00-00-00",
				"/src/", "/dst/j1/ts_incomplete"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rsyncArgs(tt.job, tt.linkBase, "/dst/j1/ts_incomplete")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rsyncArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}
