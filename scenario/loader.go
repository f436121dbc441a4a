package scenario

import (
	"fmt"
	"os"

	"github.com/detersim/determinisk/dlog"
	"gopkg.in/yaml.v3"
)

// LoadFile decodes a YAML scenario file and applies field defaults,
// logging any substitution through logger. A nil logger uses a fresh
// dlog.DefaultLogger.
func LoadFile(path string, logger dlog.Logger) (Input, error) {
	if logger == nil {
		logger = dlog.NewDefaultLogger()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("scenario: reading %s: %w", path, err)
	}

	var in Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}
	in.ApplyDefaults(logger)
	return in, nil
}

// Resolve loads a scenario by built-in name, falling back to treating the
// argument as a YAML file path when no built-in matches — mirroring the
// CLI's "scenario-or-file" argument from the original runner.
func Resolve(nameOrPath string, logger dlog.Logger) (Input, error) {
	if in, err := GetScenario(nameOrPath); err == nil {
		return in, nil
	}
	return LoadFile(nameOrPath, logger)
}
