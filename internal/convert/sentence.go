// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/clear-corpus/internal/conll"
)

const (
	// framePrefix marks the predicate column of a CLEAR row.
	framePrefix = "pb="
	// argSeparator joins the predicate:label pairs of a CLEAR row.
	argSeparator = ";"
)

// ErrArgumentColumns is returned when a row's semantic-role columns do not
// line up with the predicates of its sentence.
var ErrArgumentColumns = errors.New("argument columns do not match predicates")

// ClearRow is one output row in the reduced CLEAR column format.
type ClearRow struct {
	ID     string
	Form   string
	Lemma  string
	POS    string
	Marker string // conll.Empty or "pb=<frame>"
	Head   string
	DepRel string
	Args   string // conll.Empty or "<predId>:<label>;..."
}

// Fields returns the row's columns in output order.
func (r ClearRow) Fields() []string {
	return []string{r.ID, r.Form, r.Lemma, r.POS, r.Marker, r.Head, r.DepRel, r.Args}
}

// String returns the row as a tab-separated line without a newline.
func (r ClearRow) String() string {
	return strings.Join(r.Fields(), "\t")
}

// Sentence accumulates the token rows of one sentence and the positions of
// its predicates. The zero value is an empty sentence; Reset prepares it for
// the next one.
type Sentence struct {
	rows  []conll.Row
	preds []int
}

// Add appends a row. Every row with a predicate marker is recorded as a
// predicate, whatever its part of speech.
func (s *Sentence) Add(row conll.Row) {
	if row.IsPredicate() {
		s.preds = append(s.preds, row.Position())
	}
	s.rows = append(s.rows, row)
}

// Len returns the number of buffered rows.
func (s *Sentence) Len() int {
	return len(s.rows)
}

// Predicates returns the 0-based positions of the sentence's predicates in
// reading order.
func (s *Sentence) Predicates() []int {
	return s.preds
}

// Reset empties the sentence.
func (s *Sentence) Reset() {
	s.rows = s.rows[:0]
	s.preds = s.preds[:0]
}

// Transform converts the buffered rows to CLEAR rows. Only predicates whose
// part-of-speech tag starts with posPrefix get a pb= marker and contribute
// argument pairs; the others still occupy their argument column.
func (s *Sentence) Transform(posPrefix string) ([]ClearRow, error) {
	out := make([]ClearRow, 0, len(s.rows))
	for _, row := range s.rows {
		args, err := s.arguments(row, posPrefix)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", row.ID, err)
		}

		marker := conll.Empty
		if row.IsPredicate() && row.HasPOSPrefix(posPrefix) {
			marker = framePrefix + row.Frame
		}

		out = append(out, ClearRow{
			ID:     strconv.Itoa(row.ID),
			Form:   row.Form,
			Lemma:  row.Lemma,
			POS:    row.POS,
			Marker: marker,
			Head:   row.Head,
			DepRel: row.DepRel,
			Args:   args,
		})
	}
	return out, nil
}

// arguments re-indexes a row's role columns to 1-based predicate token ids.
func (s *Sentence) arguments(row conll.Row, posPrefix string) (string, error) {
	var pairs []string
	for i, label := range row.Args {
		if label == conll.Empty {
			continue
		}
		if i >= len(s.preds) {
			return "", fmt.Errorf("%w: column %d of %d, sentence has %d predicates",
				ErrArgumentColumns, i+1, len(row.Args), len(s.preds))
		}
		pred := s.preds[i]
		if pred < 0 || pred >= len(s.rows) {
			return "", fmt.Errorf("%w: predicate position %d outside sentence of %d tokens",
				ErrArgumentColumns, pred+1, len(s.rows))
		}
		if !s.rows[pred].HasPOSPrefix(posPrefix) {
			continue
		}
		pairs = append(pairs, strconv.Itoa(pred+1)+":"+label)
	}

	if len(pairs) == 0 {
		return conll.Empty, nil
	}
	return strings.Join(pairs, argSeparator), nil
}
