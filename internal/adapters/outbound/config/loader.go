// Package config resolves the effective configuration for one invocation by
// layering four sources in ascending priority: built-in defaults, a TOML (or
// legacy YAML) file, CCHK_* environment variables, and CLI overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/cchk/cchk/internal/domain"
	"github.com/cchk/cchk/internal/logging"
)

// discoveryOrder lists the config file candidates, first existing wins.
var discoveryOrder = []string{
	"cchk.toml",
	"commit-check.toml",
	filepath.Join(".github", "cchk.toml"),
	filepath.Join(".github", "commit-check.toml"),
}

// legacyFileName is the YAML config of older releases, honored last.
const legacyFileName = ".commit-check.yml"

// Loader implements domain.ConfigLoader with koanf.
type Loader struct {
	log zerolog.Logger
}

func New() *Loader {
	return &Loader{log: logging.Get("config")}
}

// Load resolves the effective configuration. dir is the directory searched
// for config files; explicitPath, when non-empty, must exist and parse.
// overrides holds CLI flag values keyed by option path and wins over every
// other tier.
func (l *Loader) Load(dir, explicitPath string, overrides map[string]any) (domain.Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults: every option present, resolution is total.
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return domain.Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Configuration file, if any.
	if err := l.loadFile(k, dir, explicitPath); err != nil {
		return domain.Config{}, err
	}

	// 3. Environment variables. Values are validated per option type first,
	// so a malformed variable aborts with a diagnostic naming it instead of
	// silently keeping the lower-tier value.
	if err := validateEnv(); err != nil {
		return domain.Config{}, err
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return domain.Config{}, fmt.Errorf("loading environment: %w", err)
	}

	// 4. CLI overrides, highest priority.
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return domain.Config{}, &domain.ConfigError{Err: err}
		}
	}

	var cfg domain.Config
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf(&cfg)); err != nil {
		return domain.Config{}, &domain.ConfigError{Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, &domain.ConfigError{Err: err}
	}

	return cfg, nil
}

// loadFile discovers and loads the config file. A missing file is fine; a
// present-but-broken one is a ConfigError.
func (l *Loader) loadFile(k *koanf.Koanf, dir, explicitPath string) error {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return &domain.ConfigError{Source: explicitPath, Err: err}
		}
		return l.loadPath(k, explicitPath)
	}

	for _, name := range discoveryOrder {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		l.log.Debug().Str("path", path).Msg("using config file")
		return l.loadPath(k, path)
	}

	legacy := filepath.Join(dir, legacyFileName)
	if _, err := os.Stat(legacy); err == nil {
		l.log.Debug().Str("path", legacy).Msg("using legacy config file")
		return l.loadLegacyYAML(k, legacy)
	}

	return nil
}

func (l *Loader) loadPath(k *koanf.Koanf, path string) error {
	if strings.HasSuffix(path, ".yml") || strings.HasSuffix(path, ".yaml") {
		return l.loadLegacyYAML(k, path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return &domain.ConfigError{Source: path, Err: err}
	}
	return nil
}

func (l *Loader) loadLegacyYAML(k *koanf.Koanf, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &domain.ConfigError{Source: path, Err: err}
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &domain.ConfigError{Source: path, Err: err}
	}
	if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return &domain.ConfigError{Source: path, Err: err}
	}
	return nil
}

// envKey maps a CCHK_* variable name to its option path; unknown variables
// are skipped by the provider.
func envKey(name string) string {
	return envToKey[name]
}

// validateEnv type-checks every set CCHK_* variable against the option table.
func validateEnv() error {
	for _, o := range options {
		value, ok := os.LookupEnv(o.envName)
		if !ok {
			continue
		}
		switch o.kind {
		case BoolValue:
			if _, err := strconv.ParseBool(strings.TrimSpace(value)); err != nil {
				return &domain.ConfigError{
					Source: o.envName,
					Err:    fmt.Errorf("cannot parse %q as boolean", value),
				}
			}
		case IntValue:
			if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
				return &domain.ConfigError{
					Source: o.envName,
					Err:    fmt.Errorf("cannot parse %q as integer", value),
				}
			}
		}
	}
	return nil
}

func unmarshalConf(target *domain.Config) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSpaceHookFunc(),
			),
		},
	}
}

// trimSpaceHookFunc trims whitespace from string values, so comma lists like
// "feat, fix" resolve to clean entries.
func trimSpaceHookFunc() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() == reflect.String && to.Kind() == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}

// defaultsMap flattens the built-in defaults into the koanf key space.
func defaultsMap() map[string]any {
	def := domain.DefaultConfig()
	return map[string]any{
		"commit": map[string]any{
			"conventional_commits":   def.Commit.ConventionalCommits,
			"subject_capitalized":    def.Commit.SubjectCapitalized,
			"subject_imperative":     def.Commit.SubjectImperative,
			"subject_max_length":     def.Commit.SubjectMaxLength,
			"subject_min_length":     def.Commit.SubjectMinLength,
			"allow_commit_types":     def.Commit.AllowCommitTypes,
			"allow_merge_commits":    def.Commit.AllowMergeCommits,
			"allow_revert_commits":   def.Commit.AllowRevertCommits,
			"allow_empty_commits":    def.Commit.AllowEmptyCommits,
			"allow_fixup_commits":    def.Commit.AllowFixupCommits,
			"allow_wip_commits":      def.Commit.AllowWipCommits,
			"require_body":           def.Commit.RequireBody,
			"require_signed_off_by":  def.Commit.RequireSignedOffBy,
			"required_signoff_name":  def.Commit.RequiredSignoffName,
			"required_signoff_email": def.Commit.RequiredSignoffEmail,
			"ignore_authors":         def.Commit.IgnoreAuthors,
		},
		"branch": map[string]any{
			"conventional_branch":   def.Branch.ConventionalBranch,
			"allow_branch_types":    def.Branch.AllowBranchTypes,
			"allow_branch_names":    def.Branch.AllowBranchNames,
			"require_rebase_target": def.Branch.RequireRebaseTarget,
			"ignore_authors":        def.Branch.IgnoreAuthors,
		},
	}
}
