// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package conll

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single corpus line. Rows with many predicates carry
// one column per predicate and can exceed bufio's 64 KiB default.
const maxLineSize = 1 << 20

// Scanner reads a corpus line by line and splits each line into fields.
// A line that splits into no fields is blank and marks a sentence boundary.
type Scanner struct {
	sc     *bufio.Scanner
	line   int
	fields []string
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{sc: sc}
}

// Scan advances to the next line. It returns false at end of input or on a
// read error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if !s.sc.Scan() {
		s.fields = nil
		return false
	}
	s.line++
	s.fields = strings.Fields(s.sc.Text())
	return true
}

// Fields returns the fields of the current line.
func (s *Scanner) Fields() []string {
	return s.fields
}

// Blank reports whether the current line is a sentence boundary.
func (s *Scanner) Blank() bool {
	return len(s.fields) == 0
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error {
	return s.sc.Err()
}
