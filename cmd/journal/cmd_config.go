package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"practicejournal/internal/challenges"
)

var (
	configForce   bool
	configRequire []string
)

// configCmd groups config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, create or build configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configBuildCmd = &cobra.Command{
	Use:   "build [key=value...]",
	Short: "Merge key=value overrides over the server defaults",
	Long: `Merges overrides over the server section of the config and prints the
result as YAML. Values are read as integers, then booleans, then strings.
The port must be between 1024 and 65535.

Example:
  journal config build port=9000 ssl=true --require port`,
	RunE: runConfigBuild,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(currentConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	p := newPrinter(cmd, true)
	p.Raw(string(data))
	return p.Err()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := currentConfig().Save(path); err != nil {
		return err
	}
	p := newPrinter(cmd, plainOutput)
	p.Success("Wrote %s", path)
	return p.Err()
}

func runConfigBuild(cmd *cobra.Command, args []string) error {
	overrides := make(map[string]any, len(args))
	for _, arg := range args {
		k, v, err := parseOverride(arg)
		if err != nil {
			return err
		}
		overrides[k] = v
	}

	srv := currentConfig().Server
	base := challenges.Settings{"port": srv.Port, "host": srv.Host, "debug": srv.Debug}
	merged := challenges.BuildConfigFrom(base, overrides)
	if len(configRequire) > 0 {
		var err error
		if merged, err = challenges.BuildConfigRequired(configRequire, merged); err != nil {
			return err
		}
	}
	sc, err := challenges.NewServerConfig(merged)
	if err != nil {
		return err
	}

	out, err := sc.Settings().YAML()
	if err != nil {
		return err
	}
	p := newPrinter(cmd, true)
	p.Raw(out)
	return p.Err()
}

// parseOverride splits key=value and types the value.
func parseOverride(arg string) (string, any, error) {
	k, v, ok := strings.Cut(arg, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", nil, fmt.Errorf("override %q: want key=value", arg)
	}
	if n, err := strconv.Atoi(v); err == nil {
		return k, n, nil
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return k, b, nil
	}
	return k, v, nil
}
