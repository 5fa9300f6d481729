package backup

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"linkbak/internal/model"
	"linkbak/internal/util"

	"go.uber.org/zap"
)

// recordStats writes a human-readable listing of the job's snapshot
// directories to statDir/<driveID>_<jobName>. The stat file lives on the
// internal disk, so the age of the last backup stays visible even when the
// backup drive is unplugged. Failures are logged and swallowed: the backup
// itself already succeeded.
func (r *Runner) recordStats(job model.BackupJob, driveID string) {
	statFile := filepath.Join(job.StatDir, driveID+"_"+job.Name)
	r.log.Info("generating stat file", zap.String("path", statFile))

	// Expand the glob here instead of handing it to a shell. Only
	// directories make it into the listing, matching a trailing-slash glob.
	all, err := filepath.Glob(filepath.Join(job.Target, "*"))
	if err != nil {
		r.log.Error("failed to expand target glob", zap.Error(err))
		return
	}

	var matches []string
	for _, m := range all {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			matches = append(matches, m)
		}
	}
	sort.Strings(matches)

	if len(matches) == 0 {
		if err := util.AtomicWrite(statFile, bytes.NewReader(nil)); err != nil {
			r.log.Error("failed to write stat file", zap.String("path", statFile), zap.Error(err))
		}
		return
	}

	args := append([]string{"-ldh"}, matches...)
	out, err := exec.Command(r.lsPath, args...).Output()
	if err != nil {
		r.log.Error("failed to generate stat file",
			zap.String("path", statFile),
			zap.Error(err))
		return
	}

	if err := util.AtomicWrite(statFile, bytes.NewReader(out)); err != nil {
		r.log.Error("failed to write stat file", zap.String("path", statFile), zap.Error(err))
	}
}
