package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//  -ldflags "-X 'github.com/quietbyte/csvscope/cli.Version=1.2.3' -X 'github.com/quietbyte/csvscope/cli.Date=2026-08-30'"
var (
	Version string
	Date    string
)
