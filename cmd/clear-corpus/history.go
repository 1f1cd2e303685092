// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/clear-corpus/internal/corpusdb"
	"github.com/pdiddy/clear-corpus/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show corpus counts recorded with count --record",
	Long: `History lists counting runs stored in the history database, newest
first. Use --format yaml or json to export the runs with their per-file
counts.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	store, err := corpusdb.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	switch format {
	case "table", "":
		runs, err := store.Runs(ctx, limit)
		if err != nil {
			return err
		}
		formatHistoryTable(os.Stdout, runs)
		return nil
	case "yaml":
		return store.ExportYAML(ctx, os.Stdout, limit)
	case "json":
		return store.ExportJSON(ctx, os.Stdout, limit)
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}
}

func formatHistoryTable(w io.Writer, runs []types.CorpusCount) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-20s  %-30s  %-6s  %5s  %9s  %9s  %10s\n",
		"Run", "Counted", "Directory", "Ext", "Files", "Sentences", "Words", "Predicates")
	fmt.Fprintln(w, strings.Repeat("-", 111))

	for _, r := range runs {
		dir := r.Dir
		if len(dir) > 30 {
			dir = "..." + dir[len(dir)-27:]
		}
		fmt.Fprintf(w, "%-5d  %-20s  %-30s  %-6s  %5d  %9d  %9d  %10d\n",
			r.ID, r.CountedAt.Format(time.DateTime), dir, r.Ext,
			len(r.Files), r.Sentences, r.Words, r.Predicates)
	}
	fmt.Fprintf(w, "\n%d runs\n", len(runs))
}

func init() {
	historyCmd.Flags().String("format", "table", "output format: table, yaml, or json")
	historyCmd.Flags().Int("limit", 0, "show only the newest N runs (0 = all)")

	rootCmd.AddCommand(historyCmd)
}
