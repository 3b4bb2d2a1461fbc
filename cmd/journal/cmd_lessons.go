package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"practicejournal/internal/config"
	"practicejournal/internal/journal"
	"practicejournal/internal/lessons"
	"practicejournal/internal/prompt"
	"practicejournal/internal/ui"
)

var (
	runAll          bool
	plainOutput     bool
	scriptedAnswers []string
	noHistory       bool
	briefWidth      int
)

// listCmd shows every lesson
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lessons",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// runCmd runs lessons
var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Run one or more lessons",
	Long: `Runs lessons in order. Days can be given as 3, day3 or day-03.

With --all every lesson runs concurrently, answering prompts with their
defaults, and the outputs are printed in lesson order.

Examples:
  journal run 1
  journal run 5 --answers 12,123456,0.5,30,7,88
  journal run --all --plain`,
	RunE: runLessons,
}

// briefCmd renders a lesson description
var briefCmd = &cobra.Command{
	Use:   "brief [day]",
	Short: "Show what a lesson covers",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrief,
}

func runList(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd, plainOutput)
	table := ui.NewSimpleTable("Lessons", []string{"ID", "Title"})
	for _, l := range lessons.All() {
		table.AddRow(l.ID(), l.Title())
	}
	p.Table(table)
	return p.Err()
}

func runLessons(cmd *cobra.Command, args []string) error {
	if !runAll && len(args) == 0 {
		return fmt.Errorf("give at least one day, or --all")
	}
	if runAll && len(args) > 0 {
		return fmt.Errorf("--all does not take day arguments")
	}
	for _, id := range args {
		if _, err := lessons.Get(id); err != nil {
			return err
		}
	}

	c := currentConfig()
	// Timeouts would cut off interactive prompts, so only batch runs get one.
	ctx, cancel := commandContext(runAll || len(scriptedAnswers) > 0)
	defer cancel()

	out := cmd.OutOrStdout()
	opts := journal.Options{
		Concurrency: c.Journal.Concurrency,
		OutputDir:   config.ResolvePath(workspace, c.Journal.OutputDir),
		Plain:       usePlain(cmd, plainOutput),
	}

	if c.Journal.RecordHistory && !noHistory {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		opts.Recorder = s
	}

	var in prompt.Prompter
	if len(scriptedAnswers) > 0 {
		in = prompt.NewScripted(scriptedAnswers...)
	} else {
		in = prompt.ForStdio(os.Stdin, out)
	}
	if c, ok := in.(io.Closer); ok {
		defer c.Close()
	}

	r := journal.NewRunner(out, in, opts)
	if runAll {
		results, err := r.RunAll(ctx)
		logInfo("Ran all lessons", zap.Int("lessons", len(results)), zap.Error(err))
		return err
	}
	logInfo("Running lessons", zap.Strings("days", args))
	return r.RunLessons(ctx, args)
}

func runBrief(cmd *cobra.Command, args []string) error {
	l, err := lessons.Get(args[0])
	if err != nil {
		return err
	}
	p := newPrinter(cmd, plainOutput)
	if p.Plain() {
		p.Raw(strings.TrimRight(l.Brief(), "\n") + "\n")
	} else {
		p.Raw(ui.RenderMarkdown(l.Brief(), briefWidth, ui.DetectTheme()))
	}
	return p.Err()
}
