package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	timestampLayout  = "2006-01-02_15-04-05"
	incompleteSuffix = "_incomplete"
	logSuffix        = ".log"
)

// SnapshotPaths holds every path derived from one run's timestamp: the
// in-progress rsync destination, the final name it is promoted to, and the
// run log next to them.
type SnapshotPaths struct {
	Timestamp  string
	Final      string
	Incomplete string
	Log        string
}

func NewSnapshotPaths(target string, now time.Time) SnapshotPaths {
	ts := now.Format(timestampLayout)
	return SnapshotPaths{
		Timestamp:  ts,
		Final:      filepath.Join(target, ts),
		Incomplete: filepath.Join(target, ts+incompleteSuffix),
		Log:        filepath.Join(target, ts+logSuffix),
	}
}

// isSnapshotCandidate reports whether a target entry may serve as a
// link-dest base. Substring matching rather than suffix matching is
// intentional: the fixed numeric timestamp format can never contain either
// word, and existing snapshot trees were built under this exact rule.
func isSnapshotCandidate(name string) bool {
	return !strings.Contains(name, "incomplete") && !strings.Contains(name, "log")
}

// LatestSnapshot returns the most recent completed snapshot under target,
// or "" when there is none yet. Timestamp names sort correctly as plain
// strings, so the newest candidate is the lexicographically largest.
func LatestSnapshot(target string) (string, error) {
	entries, err := os.ReadDir(target)
	if err != nil {
		return "", fmt.Errorf("failed to read target dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, name := range names {
		if isSnapshotCandidate(name) {
			return filepath.Join(target, name), nil
		}
	}

	return "", nil
}
