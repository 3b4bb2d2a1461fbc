package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"practicejournal/internal/ui"
)

var historyLimit int

// historyCmd shows recent runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lesson runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

// statsCmd summarises runs per lesson
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run counts and failures per lesson",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.RecentRuns(context.Background(), historyLimit)
	if err != nil {
		return err
	}

	p := newPrinter(cmd, plainOutput)
	if len(runs) == 0 {
		p.Line("No runs recorded yet.")
		return p.Err()
	}
	table := ui.NewSimpleTable(fmt.Sprintf("Last %d runs", len(runs)), []string{"Run", "Lesson", "Started", "Duration", "Status", "Error"}).
		AlignRight(3)
	table.MaxCellWidth = 48
	for _, r := range runs {
		table.AddRow(shortID(r.ID), r.Lesson, r.StartedAt.Format(time.DateTime), r.Duration.Round(time.Millisecond).String(), r.Status, r.Error)
	}
	p.Table(table)
	return p.Err()
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.LessonStats(context.Background())
	if err != nil {
		return err
	}

	p := newPrinter(cmd, plainOutput)
	if len(stats) == 0 {
		p.Line("No runs recorded yet.")
		return p.Err()
	}
	table := ui.NewSimpleTable("Runs per lesson", []string{"Lesson", "Runs", "Failures", "Avg", "Last run"}).
		AlignRight(1, 2, 3)
	bars := make([]ui.Bar, 0, len(stats))
	for _, st := range stats {
		table.AddRow(st.Lesson, strconv.Itoa(st.Runs), strconv.Itoa(st.Failures),
			st.AvgDuration.String(), st.LastRun.Format(time.DateTime))
		bars = append(bars, ui.Bar{Label: st.Lesson, Value: st.Runs})
	}
	p.Table(table)
	p.Blank()
	p.Raw(ui.BarChart(bars, 30, p.Styles()))
	return p.Err()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
