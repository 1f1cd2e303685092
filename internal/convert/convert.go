// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert rewrites CoNLL dependency + semantic-role corpora into the
// reduced CLEAR column format, keeping semantic roles only for predicates
// whose part-of-speech tag matches a prefix.
package convert

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/clear-corpus/internal/conll"
)

// Result holds the counts of a single conversion.
type Result struct {
	// Sentences is the number of sentence blocks written.
	Sentences int
	// Tokens is the number of rows written.
	Tokens int
	// Predicates is the number of rows written with a pb= marker.
	Predicates int
	// Unflushed is the number of rows of a trailing sentence that had no
	// terminating blank line. Those rows are not written.
	Unflushed int
}

// Convert reads CoNLL rows from r and writes CLEAR rows to w. Each sentence
// is written when its terminating blank line is read, followed by one blank
// line. A final sentence without a terminating blank line is dropped and
// reported through Result.Unflushed.
//
// A malformed row stops the conversion; output already written is not undone.
func Convert(r io.Reader, w io.Writer, posPrefix string) (Result, error) {
	var (
		res  Result
		sent Sentence
	)
	bw := bufio.NewWriter(w)
	sc := conll.NewScanner(r)

	for sc.Scan() {
		if !sc.Blank() {
			row, err := conll.ParseRow(sc.Fields())
			if err != nil {
				return res, fmt.Errorf("line %d: %w", sc.Line(), err)
			}
			sent.Add(row)
			continue
		}

		// Repeated blank lines do not open empty sentences.
		if sent.Len() == 0 {
			continue
		}

		rows, err := sent.Transform(posPrefix)
		if err != nil {
			return res, fmt.Errorf("sentence ending at line %d: %w", sc.Line(), err)
		}
		if err := writeSentence(bw, rows); err != nil {
			return res, fmt.Errorf("writing output: %w", err)
		}

		res.Sentences++
		res.Tokens += len(rows)
		for _, row := range rows {
			if row.Marker != conll.Empty {
				res.Predicates++
			}
		}
		sent.Reset()
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("reading input: %w", err)
	}

	res.Unflushed = sent.Len()

	if err := bw.Flush(); err != nil {
		return res, fmt.Errorf("writing output: %w", err)
	}
	return res, nil
}

func writeSentence(bw *bufio.Writer, rows []ClearRow) error {
	for _, row := range rows {
		bw.WriteString(row.String())
		bw.WriteByte('\n')
	}
	// bufio.Writer errors are sticky; the last write reports any earlier failure.
	return bw.WriteByte('\n')
}

// ConvertFile converts the corpus at inPath into a new file at outPath,
// replacing any existing file.
func ConvertFile(inPath, outPath, posPrefix string) (res Result, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Result{}, fmt.Errorf("opening input %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("creating output %s: %w", outPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output %s: %w", outPath, cerr)
		}
	}()

	res, err = Convert(in, out, posPrefix)
	if err != nil {
		return res, fmt.Errorf("converting %s: %w", inPath, err)
	}
	return res, nil
}
