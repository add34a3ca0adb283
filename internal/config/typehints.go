package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-gota/gota/series"
	"gopkg.in/yaml.v3"
)

// typeNames maps the hint-file spelling to the dataframe column type.
var typeNames = map[string]series.Type{
	"string": series.String,
	"int":    series.Int,
	"float":  series.Float,
	"bool":   series.Bool,
}

// LoadTypeHints reads a YAML map of column name to type name
// (string|int|float|bool) used to force column types at load time.
func LoadTypeHints(path string) (map[string]series.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read type hints: %w", err)
	}
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid type hints %s: %v", path, err)
	}
	hints := make(map[string]series.Type, len(raw))
	for col, name := range raw {
		t, ok := typeNames[name]
		if !ok {
			return nil, fmt.Errorf("invalid type hints %s: column %s has unknown type %q (expected one of %v)", path, col, name, knownTypeNames())
		}
		hints[col] = t
	}
	return hints, nil
}

func knownTypeNames() []string {
	names := make([]string, 0, len(typeNames))
	for n := range typeNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
