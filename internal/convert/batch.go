// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Status is the outcome of converting one file in a batch.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// BatchOptions configures a batch conversion.
type BatchOptions struct {
	// OutDir receives the converted files. It is created if missing.
	OutDir string
	// OutExt is the extension of converted files, with or without a dot.
	OutExt string
	// POSPrefix is passed to Convert for every file.
	POSPrefix string
	// Force reconverts files whose output already exists.
	Force bool
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns the path a batch run writes inPath to.
func OutputPath(inPath string, opts BatchOptions) string {
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	return filepath.Join(opts.OutDir, base+"."+strings.TrimPrefix(opts.OutExt, "."))
}

// ConvertOne converts a single file as part of a batch, printing its status
// to w. Unless opts.Force is set, a file whose output already exists is
// skipped.
func ConvertOne(inPath string, opts BatchOptions, w io.Writer) Status {
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	outPath := OutputPath(inPath, opts)

	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			return StatusSkipped
		}
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed
	}

	res, err := ConvertFile(inPath, outPath, opts.POSPrefix)
	if err != nil {
		// A partial output would be skipped by the next run.
		os.Remove(outPath)
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed
	}

	fmt.Fprintf(w, "converted: %s (%d sentences, %d tokens)\n", base, res.Sentences, res.Tokens)
	if res.Unflushed > 0 {
		fmt.Fprintf(w, "warning: %s ends without a blank line; last %d rows not written\n", base, res.Unflushed)
	}
	return StatusConverted
}

// ConvertBatch converts every file in paths, printing per-file status to w
// and returning a summary. A failed file does not stop the batch.
func ConvertBatch(paths []string, opts BatchOptions, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		switch ConvertOne(p, opts, w) {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
