// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/clear-corpus/internal/corpusdb"
	"github.com/pdiddy/clear-corpus/internal/count"
)

var countCmd = &cobra.Command{
	Use:   "count <directory> <extension>",
	Short: "Count sentences and words in a directory of corpus files",
	Long: `Count reads every *.<extension> file in <directory> and prints one line
per file, "<path> <sentences> <words>", followed by the totals
"[<sentences>, <words>]". Sentences are blank lines; words are all other lines.

Files are listed in the order the directory yields them unless --sorted is
given. --predicates adds the number of pb= predicates to every line. --record
stores the run in the history database (see history).`,
	Args: cobra.ExactArgs(2),
	RunE: runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	opts := count.Options{
		Sorted:     cfg.Count.Sorted,
		Predicates: cfg.Count.Predicates,
	}
	run, err := count.CountDir(args[0], args[1], opts, os.Stdout)
	if err != nil {
		return err
	}

	if !cfg.Count.Record {
		return nil
	}

	store, err := corpusdb.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(cmd.Context(), run)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Recorded run %d in %s\n", id, cfg.History.DBPath)
	return nil
}

func init() {
	countCmd.Flags().Bool("sorted", false, "list files in lexical order")
	countCmd.Flags().Bool("predicates", false, "also count pb= predicates")
	countCmd.Flags().Bool("record", false, "store the run in the history database")

	viper.BindPFlag("count.sorted", countCmd.Flags().Lookup("sorted"))
	viper.BindPFlag("count.predicates", countCmd.Flags().Lookup("predicates"))
	viper.BindPFlag("count.record", countCmd.Flags().Lookup("record"))

	rootCmd.AddCommand(countCmd)
}
