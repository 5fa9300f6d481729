package backup

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"linkbak/internal/model"

	"go.uber.org/zap"
)

// rsyncArgs assembles the rsync invocation. Without linkBase the result is
// a plain full copy; with it, files unchanged since the previous snapshot
// are hardlinked instead of copied.
func rsyncArgs(job model.BackupJob, linkBase, dest string) []string {
	args := []string{
		"-a", // archive
		"-v",
		"--stats",
		"-x", // stay on one filesystem
		"--delete",
		"--delete-excluded",
	}

	if job.ExcludeFrom != "" {
		args = append(args, "--exclude-from="+job.ExcludeFrom)
	}
	if linkBase != "" {
		args = append(args, "--link-dest="+linkBase)
	}

	return append(args, job.Source, dest)
}

// runSync executes rsync with stdout and stderr combined on one pipe and
// drains it line by line into both the run log and the debug log. The drain
// loop must keep pace with the child; a full pipe would stall rsync, so
// every line is consumed before the next read and Wait is only called after
// EOF. The exit code is the sole success signal.
func (r *Runner) runSync(args []string, logPath string) error {
	runLog, err := os.Create(logPath)
	if err != nil {
		return exitErrorf(ExitSyncFailed, "failed to create run log: %w", err)
	}
	defer func() { _ = runLog.Close() }()

	cmdline := append([]string{r.rsyncPath}, args...)
	fmt.Fprintf(runLog, "$ %s\n", strings.Join(cmdline, " "))

	pr, pw, err := os.Pipe()
	if err != nil {
		return exitErrorf(ExitSyncFailed, "failed to create pipe: %w", err)
	}

	cmd := exec.Command(r.rsyncPath, args...)
	cmd.Stdout = pw
	cmd.Stderr = pw

	r.log.Info("running rsync", zap.Strings("cmd", cmdline))

	if err := cmd.Start(); err != nil {
		_ = pw.Close()
		_ = pr.Close()
		return exitErrorf(ExitSyncFailed, "failed to start rsync: %w", err)
	}

	// The child holds its own copy of the write end; close ours so the
	// read side sees EOF when the child exits.
	_ = pw.Close()

	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		r.log.Debug(line)
		fmt.Fprintln(runLog, line)
	}
	if err := scanner.Err(); err != nil {
		r.log.Warn("rsync output truncated", zap.Error(err))
	}
	_ = pr.Close()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErrorf(ExitSyncFailed, "rsync failed with exit code %d", exitErr.ExitCode())
		}
		return exitErrorf(ExitSyncFailed, "rsync failed: %w", err)
	}

	return nil
}
