package config

import (
	"os"
	"path/filepath"

	mdwconfig "github.com/msto63/imstr/foundation/core/config"
	mdwerror "github.com/msto63/imstr/foundation/core/error"
)

// EnvPrefix prefixes every environment override, e.g. IMSTR_LOG_LEVEL
const EnvPrefix = "IMSTR"

// EnvConfigFile names the environment variable that points at a config file
const EnvConfigFile = "IMSTR_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Alloc  AllocConfig
	Format FormatConfig
	Prompt PromptConfig
	Log    LogConfig
	UI     UIConfig

	// Source is the file the values were read from, empty for defaults only
	Source string
}

// AllocConfig controls where string buffers come from
type AllocConfig struct {
	// MaxTotalBytes caps all buffers handed out in one run; 0 means unlimited
	MaxTotalBytes int
}

// FormatConfig holds settings for formatted construction
type FormatConfig struct {
	BufferSize int
}

// PromptConfig holds settings for interactive input
type PromptConfig struct {
	BufferSize int
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// UIConfig holds terminal output settings
type UIConfig struct {
	Color bool
}

// Defaults returns the built-in default values in dot notation
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"alloc.max_total_bytes": 0,
		"format.buffer_size":    100,
		"prompt.buffer_size":    100,
		"log.level":             "info",
		"log.format":            "console",
		"ui.color":              true,
	}
}

// Rules returns the validation rules applied after loading
func Rules() map[string]mdwconfig.ValidationRule {
	return map[string]mdwconfig.ValidationRule{
		"alloc.max_total_bytes": {Type: mdwconfig.TypeInt, Min: mdwconfig.IntPtr(0)},
		"format.buffer_size":    {Required: true, Type: mdwconfig.TypeInt, Min: mdwconfig.IntPtr(1)},
		"prompt.buffer_size":    {Required: true, Type: mdwconfig.TypeInt, Min: mdwconfig.IntPtr(2)},
		"log.level":             {Type: mdwconfig.TypeString, OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}},
		"log.format":            {Type: mdwconfig.TypeString, OneOf: []string{"json", "text", "console", "logfmt"}},
		"ui.color":              {Type: mdwconfig.TypeBool},
	}
}

// DefaultPaths returns the directories searched when no file is given
func DefaultPaths() []string {
	paths := []string{".", "./configs"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "imstr"))
	}
	return paths
}

// Load reads configuration from path. An empty path falls back to
// IMSTR_CONFIG and then to the default locations; finding no file there is
// not an error and yields the defaults.
func Load(path string) (*Config, error) {
	options := mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  Defaults(),
	}

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	var (
		raw *mdwconfig.Config
		err error
	)
	if path != "" {
		raw, err = mdwconfig.LoadWithOptions(os.ExpandEnv(path), options)
	} else {
		raw, err = mdwconfig.Discover(mdwconfig.DiscoveryOptions{
			Paths:      DefaultPaths(),
			Filenames:  []string{"imstr", "config"},
			Extensions: []string{".toml", ".yaml", ".yml"},
			Load:       options,
		})
	}
	if err != nil {
		return nil, err
	}

	return FromRaw(raw)
}

// FromRaw validates a loaded configuration and maps it onto Config
func FromRaw(raw *mdwconfig.Config) (*Config, error) {
	if err := raw.Validate(Rules()).Err(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid configuration").
			WithDetail("source", raw.FilePath())
	}

	return &Config{
		Alloc:  AllocConfig{MaxTotalBytes: raw.GetInt("alloc.max_total_bytes")},
		Format: FormatConfig{BufferSize: raw.GetInt("format.buffer_size")},
		Prompt: PromptConfig{BufferSize: raw.GetInt("prompt.buffer_size")},
		Log: LogConfig{
			Level:  raw.GetString("log.level"),
			Format: raw.GetString("log.format"),
		},
		UI:     UIConfig{Color: raw.GetBool("ui.color")},
		Source: raw.FilePath(),
	}, nil
}

// Default returns the configuration made of defaults and environment
// overrides only
func Default() (*Config, error) {
	return FromRaw(mdwconfig.New(mdwconfig.LoadOptions{
		EnvPrefix: EnvPrefix,
		Defaults:  Defaults(),
	}))
}
