package contract

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/teamfit/teamfit/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
)

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	TeamPath    string
	ProjectPath string
	Options     schema.Options
	ResultLimit int
	Output      schema.OutputMode
	OutputFile  string
	Member      string
	Stream      string
	Width       int // Terminal width override (0 = auto-detect)

	// GateLimits maps each checked gap kind to its maximum allowed count.
	// Kinds missing from the map are reported but never fail the gate.
	GateLimits map[schema.GapKind]int

	// Synonyms extends the built-in skill alias table; entries override defaults.
	Synonyms map[string]string

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
	Verbose   bool

	// Logger receives stage diagnostics; quiet unless Verbose is set.
	Logger *zap.Logger
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Team       string  `mapstructure:"team"`
	Project    string  `mapstructure:"project"`
	Output     string  `mapstructure:"output"`
	OutputFile string  `mapstructure:"output-file"`
	Limit      int     `mapstructure:"limit"`
	Workers    int     `mapstructure:"workers"`
	Exclusive  bool    `mapstructure:"exclusive"`
	Penalty    float64 `mapstructure:"penalty"`
	Confidence float64 `mapstructure:"confidence"`
	Capacity   int     `mapstructure:"capacity"`
	Strict     bool    `mapstructure:"strict"`
	Emoji      string  `mapstructure:"emoji"`
	Color      string  `mapstructure:"color"`
	Width      int     `mapstructure:"width"`
	Verbose    bool    `mapstructure:"verbose"`

	// --- Fields from scoresCmd.Flags() ---
	Member string `mapstructure:"member"`
	Stream string `mapstructure:"stream"`

	// --- Fields from checkCmd.Flags() ---
	ThresholdsStr string `mapstructure:"thresholds"`

	// --- Skill synonyms from the config file ---
	Synonyms map[string]string `mapstructure:"synonyms"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.GateLimits != nil {
		clone.GateLimits = make(map[schema.GapKind]int, len(c.GateLimits))
		maps.Copy(clone.GateLimits, c.GateLimits)
	}
	if c.Synonyms != nil {
		clone.Synonyms = make(map[string]string, len(c.Synonyms))
		maps.Copy(clone.Synonyms, c.Synonyms)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processEngineOptions(cfg, input); err != nil {
		return err
	}
	if err := processGateLimits(cfg, input); err != nil {
		return err
	}
	if err := resolveInputPaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Member = strings.TrimSpace(input.Member)
	cfg.Stream = strings.TrimSpace(input.Stream)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Verbose = input.Verbose

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 3. Synonyms Transfer ---
	if len(input.Synonyms) > 0 {
		cfg.Synonyms = make(map[string]string, len(input.Synonyms))
		maps.Copy(cfg.Synonyms, input.Synonyms)
	}

	return nil
}

// processEngineOptions assembles the engine options and fails fast on bad values,
// so flag mistakes surface before any input loading or scoring.
func processEngineOptions(cfg *Config, input *ConfigRawInput) error {
	opts := schema.DefaultOptions()
	opts.ExclusiveAssignment = input.Exclusive
	opts.CriticalMissPenalty = input.Penalty
	opts.ConfidenceMultiplier = input.Confidence
	opts.DefaultCapacity = input.Capacity
	opts.Strict = input.Strict
	opts.Workers = input.Workers

	if err := opts.Validate(); err != nil {
		return err
	}
	cfg.Options = opts
	return nil
}

// processGateLimits parses the check command's gate thresholds. When the flag
// is empty the default gate blocks uncovered gaps only.
func processGateLimits(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.ThresholdsStr) == "" {
		cfg.GateLimits = map[schema.GapKind]int{schema.UncoveredGap: 0}
		return nil
	}

	limits, err := ParseGateThresholds(input.ThresholdsStr)
	if err != nil {
		return fmt.Errorf("invalid --thresholds format: %w", err)
	}
	cfg.GateLimits = limits
	return nil
}

// resolveInputPaths converts team and project inputs to absolute paths and
// verifies they exist. Empty paths pass through untouched; commands that need
// inputs enforce their presence.
func resolveInputPaths(cfg *Config, input *ConfigRawInput) error {
	teamPath, err := resolvePath(input.Team, "team")
	if err != nil {
		return err
	}
	cfg.TeamPath = teamPath

	projectPath, err := resolvePath(input.Project, "project")
	if err != nil {
		return err
	}
	cfg.ProjectPath = projectPath

	return nil
}

func resolvePath(raw, role string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", err
	}
	abs = filepath.Clean(abs)

	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("%s input: %w", role, err)
	}
	return abs, nil
}

// ParseGateThresholds parses a string like "uncovered:0,spof:2,underleveled:5"
// into a map of GapKind to the maximum allowed finding count.
func ParseGateThresholds(s string) (map[schema.GapKind]int, error) {
	limits := make(map[schema.GapKind]int)

	if s == "" {
		return limits, nil
	}

	parts := strings.SplitSeq(s, ",")
	for part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return nil, fmt.Errorf("invalid threshold format '%s', expected 'kind:count'", part)
		}

		kindStr := strings.TrimSpace(keyValue[0])
		valueStr := strings.TrimSpace(keyValue[1])

		var kind schema.GapKind
		switch strings.ToLower(kindStr) {
		case "uncovered":
			kind = schema.UncoveredGap
		case "spof", "single-point-of-failure":
			kind = schema.SinglePointGap
		case "underleveled", "under-leveled":
			kind = schema.UnderLeveledGap
		default:
			return nil, fmt.Errorf("invalid gap kind '%s', must be uncovered, spof, or underleveled", kindStr)
		}

		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold count '%s' for kind %s: %w", valueStr, kind, err)
		}
		if value < 0 {
			return nil, fmt.Errorf("threshold count for kind %s cannot be negative (received %d)", kind, value)
		}

		limits[kind] = value
	}

	return limits, nil
}
