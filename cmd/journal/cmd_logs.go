package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"practicejournal/internal/challenges"
	"practicejournal/internal/logwatch"
)

var (
	logLevel  string
	logOut    string
	logFollow bool
)

// logsCmd applies the log parser to a file
var logsCmd = &cobra.Command{
	Use:   "logs [file]",
	Short: "Extract messages of one level from a log file",
	Long: `Reads "LEVEL: message" lines and prints the messages of one level.

Examples:
  journal logs app.log
  journal logs app.log --level INFO
  journal logs app.log --out errors.txt
  journal logs app.log --follow`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

func runLogs(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}

	level := strings.ToUpper(strings.TrimSpace(logLevel))
	if level == "" {
		level = logwatch.DefaultLevel
	}

	p := newPrinter(cmd, plainOutput)
	msgs := challenges.ExtractLevel(string(data), level)
	for _, m := range msgs {
		p.Line(m)
	}
	if logOut != "" {
		if err := challenges.WriteErrors(logOut, msgs); err != nil {
			return err
		}
		logInfo("Wrote messages", zap.String("path", logOut), zap.Int("count", len(msgs)))
	}
	if !logFollow {
		return p.Err()
	}

	// Following runs until interrupted; the timeout applies only when set.
	ctx, cancel := commandContext(cmd.Flags().Changed("timeout"))
	defer cancel()

	f, err := logwatch.NewFollower(path, logwatch.Options{Level: level})
	if err != nil {
		return err
	}
	defer f.Stop()
	if err := f.Start(ctx); err != nil {
		return err
	}
	for msg := range f.Messages() {
		p.Line(msg)
		if err := p.Err(); err != nil {
			return err
		}
	}
	return nil
}
