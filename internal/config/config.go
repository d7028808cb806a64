// Package config loads the mstbench TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// EnvPath names the environment variable consulted when no --config flag is given.
const EnvPath = "MSTBENCH_CONFIG"

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid")

// Config is the full mstbench configuration, as read from a TOML file over Default().
type Config struct {
	Inputs          []string `toml:"inputs" validate:"dive,required"`
	OutputJSON      string   `toml:"output_json" validate:"required"`
	OutputCSV       string   `toml:"output_csv" validate:"required"`
	Workers         int      `toml:"workers" validate:"min=1"`
	Verify          bool     `toml:"verify"`
	MetricsTextfile string   `toml:"metrics_textfile"` // optional, empty = no textfile

	Log   Log   `toml:"log"`
	Bench Bench `toml:"bench"`
}

// Log selects the slog level and handler.
type Log struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

// Bench holds the benchmark harness settings.
type Bench struct {
	Warmup     int    `toml:"warmup" validate:"min=0"`
	Iterations int    `toml:"iterations" validate:"min=1"`
	InnerRuns  int    `toml:"inner_runs" validate:"min=1"`
	OutputCSV  string `toml:"output_csv" validate:"required"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Inputs:     []string{"data/input/input.json", "data/input/input_extralarge.json"},
		OutputJSON: "data/output/output.json",
		OutputCSV:  "data/output/result.csv",
		Workers:    1,
		Verify:     true,
		Log:        Log{Level: "info", Format: "text"},
		Bench: Bench{
			Warmup:     5,
			Iterations: 30,
			InnerRuns:  50,
			OutputCSV:  "data/output/benchmark_results.csv",
		},
	}
}

// Load decodes the file at path over Default and validates the result.
// An empty path falls back to $MSTBENCH_CONFIG; if that is empty too, the
// defaults are returned. A named file that does not exist is an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path != "" {
		md, err := toml.DecodeFile(path, c)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config %s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s must satisfy %q", ErrInvalid, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
