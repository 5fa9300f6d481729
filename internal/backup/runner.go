package backup

import (
	"errors"
	"os"
	"time"

	"linkbak/internal/model"

	"go.uber.org/zap"
)

// RunRecorder persists run history. The backup never depends on it
// succeeding.
type RunRecorder interface {
	Save(run model.Run) error
}

// Runner processes backup jobs sequentially. One instance per process;
// concurrent runs against the same target are unsupported, so there is no
// locking around snapshot selection.
type Runner struct {
	log       *zap.Logger
	runs      RunRecorder
	rsyncPath string
	lsPath    string
	isMounted MountChecker
	now       func() time.Time
}

type Option func(*Runner)

// WithMountChecker overrides the mount table lookup, mainly for tests.
func WithMountChecker(mc MountChecker) Option {
	return func(r *Runner) { r.isMounted = mc }
}

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func NewRunner(log *zap.Logger, runs RunRecorder, rsyncPath, lsPath string, opts ...Option) *Runner {
	r := &Runner{
		log:       log,
		runs:      runs,
		rsyncPath: rsyncPath,
		lsPath:    lsPath,
		isMounted: PartitionMountCheck,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RunAll processes jobs in order. The first fatal failure aborts the whole
// run; remaining jobs are not attempted.
func (r *Runner) RunAll(jobs []model.BackupJob) error {
	for _, job := range jobs {
		if err := r.RunJob(job); err != nil {
			return err
		}
	}

	return nil
}

// RunJob performs one full backup pass: preconditions, link-base
// discovery, rsync into the in-progress directory, promotion, and drive
// bookkeeping. The in-progress directory of a failed sync is left in place
// for inspection; its suffix keeps it out of future link-base selection.
func (r *Runner) RunJob(job model.BackupJob) error {
	job = job.Normalized()
	started := r.now()
	paths := NewSnapshotPaths(job.Target, started)

	r.log.Info("running backup",
		zap.String("job", job.Name),
		zap.String("source", job.Source),
		zap.String("target", job.Target))

	if err := r.checkPreconditions(job); err != nil {
		return err
	}

	linkBase, err := LatestSnapshot(job.Target)
	if err != nil {
		return exitErrorf(ExitBadTarget, "failed to scan target %s: %w", job.Target, err)
	}
	if linkBase == "" {
		r.log.Info("no previous snapshot, this is the first backup", zap.String("job", job.Name))
	} else {
		r.log.Info("found previous snapshot", zap.String("base", linkBase))
	}

	driveID := DriveID(job.Mountpoint)

	syncErr := r.runSync(rsyncArgs(job, linkBase, paths.Incomplete), paths.Log)
	r.recordRun(job, paths, linkBase, started, syncErr)
	if syncErr != nil {
		return syncErr
	}

	r.log.Info("promoting snapshot",
		zap.String("from", paths.Incomplete),
		zap.String("to", paths.Final))
	if err := os.Rename(paths.Incomplete, paths.Final); err != nil {
		return exitErrorf(ExitSyncFailed, "failed to promote snapshot: %w", err)
	}

	if driveID == "" {
		r.log.Info("no drive id, skipping stat file", zap.String("mountpoint", job.Mountpoint))
		return nil
	}
	r.recordStats(job, driveID)

	return nil
}

func (r *Runner) recordRun(job model.BackupJob, paths SnapshotPaths, linkBase string, started time.Time, syncErr error) {
	if r.runs == nil {
		return
	}

	status := model.RunSuccess
	exitCode := 0
	if syncErr != nil {
		status = model.RunFailed
		var exitErr *ExitError
		if errors.As(syncErr, &exitErr) {
			exitCode = exitErr.Code
		}
	}

	run := model.Run{
		JobName:   job.Name,
		Snapshot:  paths.Timestamp,
		LinkBase:  linkBase,
		Status:    status,
		ExitCode:  exitCode,
		LogPath:   paths.Log,
		Duration:  r.now().Sub(started),
		StartedAt: started,
	}

	if err := r.runs.Save(run); err != nil {
		r.log.Warn("failed to save run history", zap.Error(err))
	}
}
