package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/ports"
	"github.com/lurkerbot/lurker/internal/services"
)

// HistoryCmd prints records persisted by previous runs
type HistoryCmd struct {
	Format   string        `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit    int           `help:"Maximum number of records to show (0 = unlimited)" default:"50"`
	MinLevel int           `help:"Only show records at or above this level" default:"0"`
	RunID    string        `help:"Only show records from this run" name:"run"`
	Since    time.Duration `help:"Only show records newer than this (e.g. 30m, 2h)"`
}

type historyRecord struct {
	Level   int       `json:"level"`
	Message string    `json:"message"`
	RunID   string    `json:"run_id"`
	Source  string    `json:"source"`
	Time    time.Time `json:"time"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	archive, err := cli.Container.Archive()
	if err != nil {
		return fmt.Errorf("failed to open record archive: %w", err)
	}

	filter := ports.RecordFilter{
		Limit:    h.Limit,
		MinLevel: domain.Level(h.MinLevel),
		RunID:    h.RunID,
	}
	if h.Since > 0 {
		filter.Since = cli.Container.TimeKeeper.Now().Add(-h.Since)
	}

	records, err := archive.Recent(context.Background(), filter)
	if err != nil {
		return err
	}
	// Recent is newest first; a log reads oldest first
	slices.Reverse(records)

	if h.Format == "json" {
		return writeHistoryJSON(os.Stdout, records)
	}
	return writeHistoryTable(os.Stdout, records)
}

func writeHistoryJSON(w io.Writer, records []domain.Record) error {
	out := make([]historyRecord, 0, len(records))
	for _, r := range records {
		out = append(out, historyRecord{
			Level:   int(r.Level),
			Message: r.Message,
			RunID:   r.RunID,
			Source:  r.Source,
			Time:    r.Time,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeHistoryTable(w io.Writer, records []domain.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tRUN\tSOURCE\tLEVEL\tMESSAGE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			services.FormatTimestamp(r.Time), shortRunID(r.RunID), r.Source, r.Level, r.Message)
	}
	return tw.Flush()
}

// shortRunID keeps the first uuid group, enough to tell runs apart
func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
