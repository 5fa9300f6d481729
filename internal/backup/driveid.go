package backup

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const driveIDFile = ".drive_id"

// DriveID reads the identity marker at the mount root: the first line,
// trimmed, names the physical drive independent of mount path or label.
// A missing or unreadable marker yields "", which disables stat recording
// for the run but never fails the backup.
func DriveID(mountpoint string) string {
	f, err := os.Open(filepath.Join(mountpoint, driveIDFile))
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}

	return strings.TrimSpace(scanner.Text())
}
