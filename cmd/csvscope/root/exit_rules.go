package root

const (
	exitCodeSuccess  = 0
	exitCodeStageErr = 1
	exitCodeUsage    = 2
)

type exitError struct {
	code int
	msg  string
}

func (e exitError) Error() string { return e.msg }
func (e exitError) ExitCode() int { return e.code }

// usageError marks argument-level failures so main exits 2 instead of 1.
func usageError(msg string) error {
	return exitError{code: exitCodeUsage, msg: msg}
}
