package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/serieslog"
	sljson "github.com/fwojciec/serieslog/json"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the log file and whether a session is open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup()
			if err != nil {
				return err
			}
			defer e.close()

			records, err := e.store.ReadAll()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File: %s\n", e.store.Path())
			if idx := serieslog.FindOpenIndex(records); idx >= 0 {
				fmt.Fprintf(out, "Open session since %s\n", records[idx].StartTime())
			} else {
				fmt.Fprintln(out, "No open session")
			}
			fmt.Fprintln(out, summaryLine(serieslog.Summarize(records, time.Local)))
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print recorded sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be non-negative, got %d: %w", limit, serieslog.ErrValidation)
			}
			e, err := opts.setup()
			if err != nil {
				return err
			}
			defer e.close()

			records, err := e.store.ReadAll()
			if err != nil {
				return err
			}
			shown := records
			if limit > 0 && len(shown) > limit {
				shown = shown[len(shown)-limit:]
			}
			out := cmd.OutOrStdout()
			if len(shown) > 0 {
				fmt.Fprintln(out, recordTable(shown, len(records)-len(shown)))
			}
			fmt.Fprintln(out, summaryLine(serieslog.Summarize(records, time.Local)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the last N sessions (0 = all)")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export PATH",
		Short: "Write a JSON snapshot of the log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup()
			if err != nil {
				return err
			}
			defer e.close()

			records, err := e.store.ReadAll()
			if err != nil {
				return err
			}
			if err := sljson.Save(args[0], e.store.Path(), time.Now(), records); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			e.logger.Info("exported", "path", args[0], "sessions", len(records))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sessions to %s\n", len(records), args[0])
			return nil
		},
	}
}

// recordTable renders records as a bordered table. offset is the 1-based
// row number of the first record minus one.
func recordTable(records []serieslog.Record, offset int) string {
	rows := make([][]string, len(records))
	for i, r := range records {
		duration := ""
		if d, ok := r.Duration(time.Local); ok {
			duration = d.String()
		}
		stop := r.StopTime()
		if r.Open() {
			stop = "(open)"
		}
		rows[i] = []string{strconv.Itoa(offset + i + 1), r.StartTime(), stop, r.SeriesCount(), duration}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "START", "STOP", "SERIES", "DURATION").
		Rows(rows...).
		String()
}

func summaryLine(s serieslog.Summary) string {
	line := fmt.Sprintf("%d sessions, %d closed, %d series, %s total", s.Sessions, s.Closed, s.Series, s.Duration)
	if s.Open {
		line += ", 1 open"
	}
	return line
}
