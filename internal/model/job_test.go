package model

import "testing"

func TestNormalized(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"adds separator", "/home/user", "/home/user/"},
		{"keeps separator", "/home/user/", "/home/user/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := BackupJob{Name: "j1", Source: tt.source}
			got := job.Normalized()

			if got.Source != tt.want {
				t.Errorf("Normalized().Source = %q, want %q", got.Source, tt.want)
			}
			if job.Source != tt.source {
				t.Errorf("original record mutated: Source = %q, want %q", job.Source, tt.source)
			}
		})
	}
}
