package backup

import "fmt"

// Exit codes are a contract with calling automation: a missing mount means
// "drive not plugged in, try again later" while a bad target means the
// configuration is wrong. Values must stay stable and distinct.
const (
	ExitNotMounted = 1
	ExitBadTarget  = 2
	ExitSyncFailed = 10
)

// ExitError is a fatal per-job failure carrying the process exit code the
// whole run should terminate with. It is returned up to the CLI layer,
// which alone decides to exit.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func exitErrorf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}
