package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOverridesFile is the override file looked up in the current
// directory when no --config flag is given.
const DefaultOverridesFile = "mailstead.yaml"

// LoadOverrides reads an Overrides file. A missing default file is not
// an error: overrides are optional and most dev invocations run
// without one.
func LoadOverrides(path string) (Overrides, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultOverridesFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Overrides{}, nil
		}
		return Overrides{}, fmt.Errorf("failed to read overrides file: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return o, nil
}

// WriteOverrides marshals an Overrides file, used by the init wizard.
func WriteOverrides(path string, o Overrides) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal overrides: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// EnvironmentFromEnv picks the target environment from a process
// environment snapshot, falling back to dev when unset. The returned
// name is not validated here; Resolve rejects unknown names.
func EnvironmentFromEnv(processEnv map[string]string) Environment {
	if v, ok := processEnv[EnvVarEnvironment]; ok && v != "" {
		return Environment(v)
	}
	return EnvDev
}
