//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/pdiddy/clear-corpus/internal/convert"
	"github.com/pdiddy/clear-corpus/internal/count"
)

const (
	sampleIn  = "internal/convert/testdata"
	sampleOut = "bin/sample"
)

// Sample converts the bundled sample corpus and counts the result.
func Sample() error {
	mg.Deps(Build)

	paths, err := count.MatchFiles(sampleIn, "conll", true)
	if err != nil {
		return err
	}
	result := convert.ConvertBatch(paths, convert.BatchOptions{
		OutDir:    sampleOut,
		OutExt:    "clear",
		POSPrefix: "VB",
		Force:     true,
	}, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d sample file(s) failed", result.Failed)
	}

	fmt.Println()
	_, err = count.CountDir(sampleOut, "clear", count.Options{Sorted: true, Predicates: true}, os.Stdout)
	return err
}
