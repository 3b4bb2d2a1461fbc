package lessons

import (
	"context"
	"errors"

	"practicejournal/internal/challenges"
)

func init() {
	Register(&lesson{
		id:    "day-08",
		title: "Control Flow Review",
		brief: `# Day 8: Control Flow Review

An if/else-if ladder for score bands, a filtered loop and a countdown song.

**Challenge:** build a server config by merging overrides over defaults
without mutating them, with required keys, type checks, nested merges and
an environment layer.`,
		run: runDay08,
	})
}

// scoreBand labels a score.
func scoreBand(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Okay"
	default:
		return "Needs Improvement"
	}
}

func runDay08(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Task 1: Score Bands")
	score, ok, err := s.AskFloat(ctx, "Enter your score: ", 85)
	if err != nil {
		return err
	}
	if ok {
		out.Line(scoreBand(score))
	}

	out.Section("Task 2: Even Numbers")
	for i := 1; i <= 10; i++ {
		if i%2 == 0 {
			out.Linef("The number %d is even", i)
		}
	}

	out.Section("Task 3: Bottles")
	for bottles := 5; bottles > 0; bottles-- {
		out.Linef("There are %d bottles on the wall!", bottles)
	}

	out.Section("Challenge: Config Builder")
	cases := []map[string]any{
		nil,
		{"port": 9000, "timeout": 30},
		{"host": "0.0.0.0", "ssl": true},
	}
	for _, o := range cases {
		out.Linef("BuildConfig(%v) = %s", challenges.Settings(o), challenges.BuildConfig(o))
	}
	out.Line("Defaults after all calls:", challenges.DefaultSettings())

	out.Heading("Required keys")
	if _, err := challenges.BuildConfigRequired([]string{"database_url"}, map[string]any{"port": 9000}); err != nil {
		out.Error("Error: %v", err)
	}
	cfg, err := challenges.BuildConfigRequired([]string{"database_url"}, map[string]any{
		"port":         9000,
		"database_url": "postgresql://localhost",
	})
	if err != nil {
		return err
	}
	out.Success("Valid: %s", cfg)

	out.Heading("Type validation")
	if _, err := challenges.BuildConfigValidated(map[string]any{"port": "9000"}); errors.Is(err, challenges.ErrInvalidType) {
		out.Error("Validation error: %v", err)
	}

	out.Heading("Nested merge")
	nested := challenges.MergeNested(challenges.NestedDefaults(), map[string]any{
		"port":     9000,
		"database": map[string]any{"port": 3306},
	})
	out.Line("port:", nested["port"])
	out.Line("database:", challenges.Settings(nested["database"].(map[string]any)))

	out.Heading("Environment layer")
	envCfg, err := challenges.BuildConfigEnv(map[string]any{"debug": true})
	if err != nil {
		out.Warn("Environment ignored: %v", err)
	} else {
		out.Line("defaults < PORT/HOST/DEBUG < overrides:", envCfg)
	}

	out.Heading("Validated config object")
	sc, err := challenges.NewServerConfig(map[string]any{"port": 9000, "timeout": 30})
	if err != nil {
		return err
	}
	out.Line(sc)
	if err := sc.Update(map[string]any{"debug": true}); err != nil {
		return err
	}
	out.Line("After update:", sc)
	if err := sc.Update(map[string]any{"port": 80}); err != nil {
		out.Error("Rejected: %v", err)
	}

	yml, err := challenges.BuildConfig(map[string]any{"port": 9000}).YAML()
	if err != nil {
		return err
	}
	out.Heading("As YAML")
	out.Raw(yml)
	return nil
}
