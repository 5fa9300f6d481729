package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDriveID(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"single line", "usb-black-1tb\n", "usb-black-1tb"},
		{"trailing whitespace", "  usb-black-1tb \n", "usb-black-1tb"},
		{"first line only", "usb-black-1tb\nsecond line\n", "usb-black-1tb"},
		{"empty file", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mnt := t.TempDir()
			if err := os.WriteFile(filepath.Join(mnt, ".drive_id"), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			if got := DriveID(mnt); got != tt.want {
				t.Errorf("DriveID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDriveIDMissingMarker(t *testing.T) {
	if got := DriveID(t.TempDir()); got != "" {
		t.Errorf("DriveID() = %q, want empty for missing marker", got)
	}
}
