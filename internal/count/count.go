// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package count reports sentence and word counts for a directory of
// CoNLL-style corpus files. A blank line ends a sentence; every other line
// is a word.
package count

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/clear-corpus/internal/conll"
	"github.com/pdiddy/clear-corpus/pkg/types"
)

// markerColumn is the CLEAR column holding "pb=<frame>" for predicates.
const markerColumn = 4

const predicateMarker = "pb="

// Options controls a directory count.
type Options struct {
	// Sorted lists files in lexical order. By default files are listed in
	// the order the directory yields them, which varies by platform.
	Sorted bool

	// Predicates appends the pb= predicate count to every printed line.
	Predicates bool
}

// Count reads a corpus from r and returns its counts. Path is left empty.
func Count(r io.Reader) (types.FileCount, error) {
	var fc types.FileCount
	sc := conll.NewScanner(r)
	for sc.Scan() {
		if sc.Blank() {
			fc.Sentences++
			continue
		}
		fc.Words++
		if f := sc.Fields(); len(f) > markerColumn && strings.Contains(f[markerColumn], predicateMarker) {
			fc.Predicates++
		}
	}
	if err := sc.Err(); err != nil {
		return fc, err
	}
	return fc, nil
}

// CountFile returns the counts of the file at path.
func CountFile(path string) (types.FileCount, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.FileCount{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fc, err := Count(f)
	if err != nil {
		return types.FileCount{}, fmt.Errorf("reading %s: %w", path, err)
	}
	fc.Path = path
	return fc, nil
}

// MatchFiles returns the files in dir whose names match "*.<ext>". The
// extension may be given with or without its leading dot. Hidden files and
// directories are not matched.
func MatchFiles(dir, ext string, sorted bool) ([]string, error) {
	pattern := "*." + strings.TrimPrefix(ext, ".")
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("extension %q: %w", ext, err)
	}

	d, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening directory %s: %w", dir, err)
	}
	defer d.Close()

	entries, err := d.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if ok, _ := filepath.Match(pattern, name); ok {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	if sorted {
		sort.Strings(paths)
	}
	return paths, nil
}

// CountDir counts every file in dir matching ext. Each file's line
// "<path> <sentences> <words>" is printed to w as soon as it is counted,
// followed by the totals "[<sentences>, <words>]". The first file that
// cannot be read stops the run; lines already printed remain.
func CountDir(dir, ext string, opts Options, w io.Writer) (types.CorpusCount, error) {
	run := types.CorpusCount{
		Dir:       dir,
		Ext:       strings.TrimPrefix(ext, "."),
		CountedAt: time.Now().UTC(),
	}

	paths, err := MatchFiles(dir, ext, opts.Sorted)
	if err != nil {
		return run, err
	}

	for _, p := range paths {
		fc, err := CountFile(p)
		if err != nil {
			return run, err
		}
		run.Add(fc)

		if opts.Predicates {
			fmt.Fprintf(w, "%s %d %d %d\n", fc.Path, fc.Sentences, fc.Words, fc.Predicates)
		} else {
			fmt.Fprintf(w, "%s %d %d\n", fc.Path, fc.Sentences, fc.Words)
		}
	}

	if opts.Predicates {
		fmt.Fprintf(w, "[%d, %d, %d]\n", run.Sentences, run.Words, run.Predicates)
	} else {
		fmt.Fprintf(w, "[%d, %d]\n", run.Sentences, run.Words)
	}
	return run, nil
}
