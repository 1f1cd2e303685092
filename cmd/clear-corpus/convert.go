// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/clear-corpus/internal/convert"
	"github.com/pdiddy/clear-corpus/internal/count"
	"github.com/pdiddy/clear-corpus/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output> [pos-prefix]",
	Short: "Convert a CoNLL semantic-role corpus to the CLEAR format",
	Long: `Convert reads a CoNLL dependency + semantic-role corpus and writes the
reduced 8-column CLEAR format. Semantic-role arguments are kept only for
predicates whose part-of-speech tag starts with pos-prefix (e.g. VB keeps
VB, VBD, VBZ, ...). When pos-prefix is omitted, convert.pos_prefix from the
configuration is used (default VB).

With --batch, <input> and <output> are directories: every *.<ext> file in
<input> is converted into <output>, skipping files already converted unless
--force is given.

A final sentence with no blank line after it is not written.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	posPrefix := cfg.Convert.POSPrefix
	if len(args) == 3 {
		posPrefix = args[2]
	}
	cmd.SilenceUsage = true

	batch, _ := cmd.Flags().GetBool("batch")
	if batch {
		return runConvertBatch(args[0], args[1], posPrefix, cfg.Convert)
	}

	res, err := convert.ConvertFile(args[0], args[1], posPrefix)
	if err != nil {
		return err
	}
	if res.Unflushed > 0 {
		fmt.Fprintf(os.Stderr, "warning: %s ends without a blank line; last %d rows not written\n", args[0], res.Unflushed)
	}
	return nil
}

func runConvertBatch(inDir, outDir, posPrefix string, cfg types.ConversionConfig) error {
	paths, err := count.MatchFiles(inDir, cfg.InExt, true)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.%s files in %s", cfg.InExt, inDir)
	}

	result := convert.ConvertBatch(paths, convert.BatchOptions{
		OutDir:    outDir,
		OutExt:    cfg.OutExt,
		POSPrefix: posPrefix,
		Force:     cfg.Force,
	}, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	convertCmd.Flags().Bool("batch", false, "convert every matching file in the input directory")
	convertCmd.Flags().String("ext", types.DefaultInExt, "input file extension for --batch")
	convertCmd.Flags().String("out-ext", types.DefaultOutExt, "output file extension for --batch")
	convertCmd.Flags().Bool("force", false, "reconvert files whose output already exists")

	viper.BindPFlag("convert.in_ext", convertCmd.Flags().Lookup("ext"))
	viper.BindPFlag("convert.out_ext", convertCmd.Flags().Lookup("out-ext"))
	viper.BindPFlag("convert.force", convertCmd.Flags().Lookup("force"))

	rootCmd.AddCommand(convertCmd)
}
