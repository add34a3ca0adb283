package root

import (
	"reflect"
	"testing"

	"github.com/quietbyte/csvscope/internal/stage"
)

func TestPreparedStagesLoadOnly(t *testing.T) {
	got := preparedStages(&stage.Options{SourcePath: "data.csv"})
	if !reflect.DeepEqual(got, []string{"load-csv"}) {
		t.Fatalf("unexpected stages: %v", got)
	}
}

func TestPreparedStagesFullRun(t *testing.T) {
	got := preparedStages(&stage.Options{
		SourcePath:   "data.csv",
		Summary:      true,
		Column:       "heart_rate",
		FilterExpr:   "heart_rate>120",
		OutPath:      "out.csv",
		UploadTarget: "bucket/key",
	})
	want := []string{"load-csv", "summarize", "describe-column", "filter-rows", "write-csv", "upload-artifact"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected stages: %v", got)
	}
}

func TestPreparedStagesLuaFilter(t *testing.T) {
	got := preparedStages(&stage.Options{SourcePath: "data.csv", LuaExpr: "true", OutPath: "out.csv"})
	want := []string{"load-csv", "lua-filter", "write-csv"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected stages: %v", got)
	}
}

func TestPreparedStagesFilterBeforeSaveBeforeUpload(t *testing.T) {
	got := preparedStages(&stage.Options{
		SourcePath:   "data.csv",
		FilterExpr:   "x>1",
		OutPath:      "out.csv",
		UploadTarget: "b/k",
	})
	want := []string{"load-csv", "filter-rows", "write-csv", "upload-artifact"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected stages: %v", got)
	}
}
