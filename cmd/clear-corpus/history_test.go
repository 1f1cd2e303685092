// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/clear-corpus/pkg/types"
)

func TestFormatHistoryTable(t *testing.T) {
	runs := []types.CorpusCount{
		{
			ID:         2,
			Dir:        "/data/ontonotes/english/annotations/nw/wsj",
			Ext:        "clear",
			Files:      []types.FileCount{{Path: "a"}, {Path: "b"}},
			Sentences:  120,
			Words:      2800,
			Predicates: 410,
			CountedAt:  time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	formatHistoryTable(&buf, runs)
	out := buf.String()

	assert.Contains(t, out, "Sentences")
	assert.Contains(t, out, "2026-03-02 09:30:00")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "2800")
	assert.True(t, strings.HasSuffix(out, "\n1 runs\n"))
}

func TestFormatHistoryTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	formatHistoryTable(&buf, nil)
	assert.Equal(t, "No runs recorded.\n", buf.String())
}
