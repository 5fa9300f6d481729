package backup

import (
	"os"
	"path/filepath"

	"linkbak/internal/model"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// MountChecker reports whether a path is currently a mountpoint.
type MountChecker func(path string) (bool, error)

// PartitionMountCheck consults the kernel's mount table via gopsutil.
func PartitionMountCheck(path string) (bool, error) {
	parts, err := disk.Partitions(true)
	if err != nil {
		return false, err
	}

	clean := filepath.Clean(path)
	for _, p := range parts {
		if filepath.Clean(p.Mountpoint) == clean {
			return true, nil
		}
	}

	return false, nil
}

// checkPreconditions gates the run before anything touches the target. An
// absent mount and a misconfigured target are fatal with distinct exit
// codes. A non-writable target is only logged: if it actually matters,
// rsync will fail and report it with the sync exit code.
func (r *Runner) checkPreconditions(job model.BackupJob) error {
	mounted, err := r.isMounted(job.Mountpoint)
	if err != nil {
		return exitErrorf(ExitNotMounted, "failed to check mountpoint %s: %w", job.Mountpoint, err)
	}
	if !mounted {
		return exitErrorf(ExitNotMounted, "target %s is not mounted", job.Mountpoint)
	}

	info, err := os.Stat(job.Target)
	if os.IsNotExist(err) {
		return exitErrorf(ExitBadTarget, "target %s does not exist", job.Target)
	}
	if err != nil {
		return exitErrorf(ExitBadTarget, "failed to stat target %s: %w", job.Target, err)
	}
	if !info.IsDir() {
		return exitErrorf(ExitBadTarget, "target %s is not a directory", job.Target)
	}

	if err := unix.Access(job.Target, unix.W_OK); err != nil {
		r.log.Error("target is not writable",
			zap.String("target", job.Target),
			zap.Error(err))
	}

	return nil
}
