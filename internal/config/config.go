package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Storage holds the object-storage settings from the runtime config. Empty
// fields defer to the ambient credential/config chain.
type Storage struct {
	Region         string
	Profile        string
	Endpoint       string
	ForcePathStyle bool
}

// Runtime is the validated runtime configuration.
type Runtime struct {
	ConfigVersion string
	Storage       Storage
	Provenance    bool
}

// Load reads a CUE file and validates the minimal required schema.
// Required fields:
//   - configVersion: string, must be "1"
//
// Optional fields:
//   - storage: { region, profile, endpoint: string, forcePathStyle: bool }
//   - provenance: bool
func Load(path string) (Runtime, error) {
	var rt Runtime
	if filepath.Ext(path) != ".cue" {
		return rt, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rt, fmt.Errorf("failed to read config: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return rt, fmt.Errorf("invalid config: %v", err)
	}

	version, err := requireStringField(v, "configVersion")
	if err != nil {
		return rt, err
	}
	if version != "1" {
		return rt, fmt.Errorf("unsupported configVersion: %s", version)
	}
	rt.ConfigVersion = version

	rt.Storage.Region, err = optionalStringField(v, "storage.region")
	if err != nil {
		return rt, err
	}
	rt.Storage.Profile, err = optionalStringField(v, "storage.profile")
	if err != nil {
		return rt, err
	}
	rt.Storage.Endpoint, err = optionalStringField(v, "storage.endpoint")
	if err != nil {
		return rt, err
	}
	rt.Storage.ForcePathStyle, err = optionalBoolField(v, "storage.forcePathStyle")
	if err != nil {
		return rt, err
	}
	rt.Provenance, err = optionalBoolField(v, "provenance")
	if err != nil {
		return rt, err
	}
	return rt, nil
}

func requireStringField(v cue.Value, name string) (string, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return "", fmt.Errorf("missing required field: %s", name)
	}
	s, err := f.String()
	if err != nil {
		return "", fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return s, nil
}

func optionalStringField(v cue.Value, path string) (string, error) {
	f := v.LookupPath(cue.ParsePath(path))
	if !f.Exists() {
		return "", nil
	}
	s, err := f.String()
	if err != nil {
		return "", fmt.Errorf("invalid type for field: %s (expected string)", path)
	}
	return s, nil
}

func optionalBoolField(v cue.Value, path string) (bool, error) {
	f := v.LookupPath(cue.ParsePath(path))
	if !f.Exists() {
		return false, nil
	}
	b, err := f.Bool()
	if err != nil {
		return false, fmt.Errorf("invalid type for field: %s (expected bool)", path)
	}
	return b, nil
}
