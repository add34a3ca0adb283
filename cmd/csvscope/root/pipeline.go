package root

import (
	"context"

	"github.com/quietbyte/csvscope/internal/stage"
)

// preparedStages returns the deterministic stage order for a run. Load is
// unconditional; every other stage is skip-or-run based on its flag.
func preparedStages(o *stage.Options) []string {
	stages := []string{"load-csv"}
	if o.Summary {
		stages = append(stages, "summarize")
	}
	if o.Column != "" {
		stages = append(stages, "describe-column")
	}
	if o.FilterExpr != "" {
		stages = append(stages, "filter-rows")
	}
	if o.LuaExpr != "" {
		stages = append(stages, "lua-filter")
	}
	if o.OutPath != "" {
		stages = append(stages, "write-csv")
	}
	if o.UploadTarget != "" {
		stages = append(stages, "upload-artifact")
	}
	return stages
}

// runStages executes the provided list of stage names in order. The first
// failure halts the pipeline; completed side effects stay in place.
func runStages(ctx context.Context, in stage.Envelope, stages []string, deps stage.Deps) (stage.Envelope, error) {
	out := in
	var err error
	for _, name := range stages {
		out, err = stage.Run(ctx, name, out, deps)
		if err != nil {
			return stage.Envelope{}, err
		}
	}
	return out, nil
}
