package root

import "testing"

func TestUsageErrorCode(t *testing.T) {
	err := usageError("missing required flag: --file")
	ec, ok := err.(interface{ ExitCode() int })
	if !ok || ec.ExitCode() != exitCodeUsage {
		t.Fatalf("unexpected exit code: %v", err)
	}
	if err.Error() != "missing required flag: --file" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestExitCodes(t *testing.T) {
	if exitCodeSuccess != 0 || exitCodeStageErr != 1 || exitCodeUsage != 2 {
		t.Fatalf("exit code contract changed")
	}
}
