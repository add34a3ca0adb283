package root

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quietbyte/csvscope/cmd/csvscope/version"
	"github.com/quietbyte/csvscope/internal/config"
	"github.com/quietbyte/csvscope/internal/ctxlog"
	"github.com/quietbyte/csvscope/internal/stage"
	"github.com/quietbyte/csvscope/internal/storage"
)

var (
	flagFile     string
	flagSummary  bool
	flagColumn   string
	flagFilter   string
	flagLua      string
	flagOut      string
	flagUpload   string
	flagConfig   string
	flagTypes    string
)

// newUploader is swapped out by tests to keep uploads off the network.
var newUploader = storage.NewS3

// NewRootCmd creates the root command for csvscope.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvscope",
		Short: "CLI: load a CSV dataset, describe it, filter rows, save and upload the result",
		Long: `csvscope loads a CSV file and runs the requested stages in a fixed order:
load, summarize, describe column, filter, save, upload. Each stage is gated
by its flag; the first failing stage halts the run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPipeline,
	}

	cmd.Flags().StringVar(&flagFile, "file", "", "Path to the source CSV file (required)")
	cmd.Flags().BoolVar(&flagSummary, "summary", false, "Print whole-dataset info and summary statistics")
	cmd.Flags().StringVar(&flagColumn, "column", "", "Column name to describe")
	cmd.Flags().StringVar(&flagFilter, "filter", "", "Comparison filter expression, e.g. 'heart_rate>120'")
	cmd.Flags().StringVar(&flagLua, "filter-lua", "", "Lua boolean filter expression evaluated per row")
	cmd.Flags().StringVar(&flagOut, "out", "", "Path to save the (possibly filtered) CSV")
	cmd.Flags().StringVar(&flagUpload, "upload", "", "Upload the saved file to BUCKET/KEY")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to runtime config file (.cue)")
	cmd.Flags().StringVar(&flagTypes, "types", "", "Path to YAML column type hints")

	// Flag-parse failures go through our error channel with a usage exit
	// code instead of cobra's default output.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err.Error())
	})

	cmd.AddCommand(version.VersionCmd)
	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	if flagFile == "" {
		return usageError("missing required flag: --file")
	}
	if flagFilter != "" && flagLua != "" {
		return usageError("--filter and --filter-lua are mutually exclusive")
	}

	opts := &stage.Options{
		SourcePath:   flagFile,
		Summary:      flagSummary,
		Column:       flagColumn,
		FilterExpr:   flagFilter,
		LuaExpr:      flagLua,
		OutPath:      flagOut,
		UploadTarget: flagUpload,
	}

	if flagConfig != "" {
		rt, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		opts.Storage = rt.Storage
		opts.Provenance = rt.Provenance
	}
	if flagTypes != "" {
		hints, err := config.LoadTypeHints(flagTypes)
		if err != nil {
			return err
		}
		opts.TypeHints = hints
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxlog.WithLogger(ctx, slog.Default())

	deps := stage.Deps{
		Stdout:      cmd.OutOrStdout(),
		NewUploader: newUploader,
	}

	_, err := runStages(ctx, stage.Envelope{Opts: opts}, preparedStages(opts), deps)
	return err
}
