// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package conll reads CoNLL-style token rows: one token per line, fields
// separated by whitespace, sentences separated by a blank line.
//
// The column positions of the dependency + semantic-role layout are collected
// below so the positional contract is stated once and tested on its own.
package conll

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Column positions of a token row (0-based).
const (
	ColID         = 0  // 1-based token id within the sentence
	ColForm       = 1  // surface form
	ColLemma      = 2  // lemma
	ColPOS        = 4  // coarse part-of-speech tag
	ColFeats      = 6  // feature string
	ColHead       = 8  // governor token id
	ColDepRel     = 10 // dependency label
	ColPredMarker = 12 // predicate sense; Empty when the token is not a predicate
	ColFrame      = 13 // predicate frame identifier
	ColArgs       = 14 // first semantic-role column, one per predicate
)

// MinFields is the smallest number of fields a token row may have: every
// column up to and including ColFrame. A sentence without predicates has no
// argument columns.
const MinFields = ColArgs

// Empty is the placeholder value of an unset field.
const Empty = "_"

var (
	// ErrShortRow is returned for a row with fewer than MinFields fields.
	ErrShortRow = errors.New("too few columns")

	// ErrBadID is returned when the id field is not an integer.
	ErrBadID = errors.New("token id is not an integer")
)

// Row is a single parsed token row.
type Row struct {
	ID         int
	Form       string
	Lemma      string
	POS        string
	Feats      string
	Head       string
	DepRel     string
	PredMarker string
	Frame      string

	// Args holds the raw semantic-role columns, one per predicate of the
	// sentence in reading order.
	Args []string
}

// IsPredicate reports whether the row is marked as a predicate.
func (r Row) IsPredicate() bool {
	return r.PredMarker != Empty
}

// Position returns the 0-based position of the row within its sentence.
func (r Row) Position() int {
	return r.ID - 1
}

// HasPOSPrefix reports whether the row's part-of-speech tag starts with prefix.
func (r Row) HasPOSPrefix(prefix string) bool {
	return strings.HasPrefix(r.POS, prefix)
}

// ParseRow builds a Row from the whitespace-split fields of a line.
func ParseRow(fields []string) (Row, error) {
	var row Row
	if len(fields) < MinFields {
		return row, fmt.Errorf("%w: got %d, need at least %d", ErrShortRow, len(fields), MinFields)
	}

	id, err := strconv.Atoi(fields[ColID])
	if err != nil {
		return row, fmt.Errorf("%w: %q", ErrBadID, fields[ColID])
	}

	row = Row{
		ID:         id,
		Form:       fields[ColForm],
		Lemma:      fields[ColLemma],
		POS:        fields[ColPOS],
		Feats:      fields[ColFeats],
		Head:       fields[ColHead],
		DepRel:     fields[ColDepRel],
		PredMarker: fields[ColPredMarker],
		Frame:      fields[ColFrame],
		Args:       fields[ColArgs:],
	}
	return row, nil
}
