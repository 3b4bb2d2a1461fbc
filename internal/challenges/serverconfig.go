package challenges

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingKeys is returned when required settings are absent.
	ErrMissingKeys = errors.New("missing required keys")
	// ErrInvalidPort is returned for ports outside 1024-65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidType is returned when a known setting has the wrong type.
	ErrInvalidType = errors.New("invalid setting type")
)

// Settings is a loosely typed server configuration.
type Settings map[string]any

// DefaultSettings returns a fresh copy of the server defaults.
func DefaultSettings() Settings {
	return Settings{"port": 8080, "host": "localhost", "debug": false}
}

// Clone returns a shallow copy.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Keys returns the setting names in sorted order.
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// YAML renders the settings as a YAML document.
func (s Settings) YAML() (string, error) {
	b, err := yaml.Marshal(map[string]any(s))
	if err != nil {
		return "", fmt.Errorf("marshal settings: %w", err)
	}
	return string(b), nil
}

// String renders the settings as {key: value, ...} in key order.
func (s Settings) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		v := s[k]
		if str, ok := v.(string); ok {
			v = fmt.Sprintf("%q", str)
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// BuildConfig merges overrides over DefaultSettings. Overrides replace
// existing keys and new keys are added. The defaults are never mutated.
func BuildConfig(overrides map[string]any) Settings {
	return BuildConfigFrom(DefaultSettings(), overrides)
}

// BuildConfigFrom merges overrides over a copy of base.
func BuildConfigFrom(base Settings, overrides map[string]any) Settings {
	out := base.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// MergeNested merges override into a copy of base. When both sides hold a
// map for the same key the maps are merged recursively.
func MergeNested(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		bm, bok := asMap(out[k])
		om, ook := asMap(v)
		if bok && ook {
			out[k] = MergeNested(bm, om)
			continue
		}
		out[k] = v
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Settings:
		return m, true
	default:
		return nil, false
	}
}

// NestedDefaults are the defaults used by the nested merge variant.
func NestedDefaults() map[string]any {
	return map[string]any{
		"port":  8080,
		"host":  "localhost",
		"debug": false,
		"database": map[string]any{
			"host": "localhost",
			"port": 5432,
			"name": "mydb",
		},
	}
}

// BuildConfigRequired builds the config and fails with ErrMissingKeys when
// any of required is absent from the result.
func BuildConfigRequired(required []string, overrides map[string]any) (Settings, error) {
	cfg := BuildConfig(overrides)
	var missing []string
	for _, k := range required {
		if _, ok := cfg[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	}
	return cfg, nil
}

// BuildConfigValidated builds the config and checks the types of port,
// host and debug.
func BuildConfigValidated(overrides map[string]any) (Settings, error) {
	cfg := BuildConfig(overrides)
	if err := checkTypes(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkTypes(cfg Settings) error {
	if _, ok := cfg["port"].(int); !ok {
		return fmt.Errorf("%w: port must be int, got %T", ErrInvalidType, cfg["port"])
	}
	if _, ok := cfg["host"].(string); !ok {
		return fmt.Errorf("%w: host must be string, got %T", ErrInvalidType, cfg["host"])
	}
	if _, ok := cfg["debug"].(bool); !ok {
		return fmt.Errorf("%w: debug must be bool, got %T", ErrInvalidType, cfg["debug"])
	}
	return nil
}

// serverEnv is the environment layer of BuildConfigEnv.
type serverEnv struct {
	Port  *int    `env:"PORT"`
	Host  *string `env:"HOST"`
	Debug *string `env:"DEBUG"`
}

// BuildConfigEnv layers settings as defaults < environment < overrides.
// PORT must be an integer; DEBUG is true only for "true" in any case.
func BuildConfigEnv(overrides map[string]any) (Settings, error) {
	var e serverEnv
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg := DefaultSettings()
	if e.Port != nil {
		cfg["port"] = *e.Port
	}
	if e.Host != nil {
		cfg["host"] = *e.Host
	}
	if e.Debug != nil {
		cfg["debug"] = strings.EqualFold(*e.Debug, "true")
	}
	return BuildConfigFrom(cfg, overrides), nil
}

// Port range accepted by ServerConfig.
const (
	MinServerPort = 1024
	MaxServerPort = 65535
)

// ServerConfig is a validated configuration object.
type ServerConfig struct {
	settings Settings
}

// NewServerConfig builds and validates a configuration.
func NewServerConfig(overrides map[string]any) (*ServerConfig, error) {
	cfg := BuildConfig(overrides)
	if err := validatePort(cfg); err != nil {
		return nil, err
	}
	return &ServerConfig{settings: cfg}, nil
}

func validatePort(cfg Settings) error {
	port, ok := cfg["port"].(int)
	if !ok {
		return fmt.Errorf("%w: port must be int, got %T", ErrInvalidPort, cfg["port"])
	}
	if port < MinServerPort || port > MaxServerPort {
		return fmt.Errorf("%w: must be between %d-%d, got %d", ErrInvalidPort, MinServerPort, MaxServerPort, port)
	}
	return nil
}

// Get returns the value for key, or fallback when it is not set.
func (c *ServerConfig) Get(key string, fallback any) any {
	if v, ok := c.settings[key]; ok {
		return v
	}
	return fallback
}

// Update applies overrides. The configuration is left unchanged when the
// result does not validate.
func (c *ServerConfig) Update(overrides map[string]any) error {
	next := BuildConfigFrom(c.settings, overrides)
	if err := validatePort(next); err != nil {
		return err
	}
	c.settings = next
	return nil
}

// Settings returns a copy of the current settings.
func (c *ServerConfig) Settings() Settings { return c.settings.Clone() }

func (c *ServerConfig) String() string {
	return "Config(" + c.settings.String() + ")"
}
