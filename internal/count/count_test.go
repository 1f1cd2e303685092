// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package count

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clearSample = "1\tJohn\tjohn\tNNP\t_\t2\tnsubj\t2:A0\n" +
	"2\tgave\tgive\tVBD\tpb=give.01\t0\troot\t_\n" +
	"\n" +
	"1\tRun\trun\tVB\tpb=run.01\t0\troot\t_\n" +
	"\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestCount(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantSentences  int
		wantWords      int
		wantPredicates int
	}{
		{
			name:           "two terminated sentences",
			input:          clearSample,
			wantSentences:  2,
			wantWords:      3,
			wantPredicates: 2,
		},
		{
			name:      "no blank lines",
			input:     "a\nb\nc",
			wantWords: 3,
		},
		{
			name:          "whitespace-only lines are blank",
			input:         "a\n \t\nb\n\n",
			wantSentences: 2,
			wantWords:     2,
		},
		{
			name:  "empty file",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc, err := Count(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSentences, fc.Sentences)
			assert.Equal(t, tt.wantWords, fc.Words)
			assert.Equal(t, tt.wantPredicates, fc.Predicates)
		})
	}
}

func TestCountFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.clear", clearSample)

	fc, err := CountFile(p)
	require.NoError(t, err)
	assert.Equal(t, p, fc.Path)
	assert.Equal(t, 2, fc.Sentences)
	assert.Equal(t, 3, fc.Words)

	_, err = CountFile(filepath.Join(dir, "missing.clear"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMatchFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.clear", "")
	writeFile(t, dir, "a.clear", "")
	writeFile(t, dir, "c.conll", "")
	writeFile(t, dir, ".hidden.clear", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.clear"), 0o755))

	want := []string{filepath.Join(dir, "a.clear"), filepath.Join(dir, "b.clear")}

	for _, ext := range []string{"clear", ".clear"} {
		got, err := MatchFiles(dir, ext, true)
		require.NoError(t, err)
		assert.Equal(t, want, got, "ext %q", ext)
	}

	unsorted, err := MatchFiles(dir, "clear", false)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, unsorted)
}

func TestMatchFiles_Errors(t *testing.T) {
	_, err := MatchFiles(filepath.Join(t.TempDir(), "nope"), "clear", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = MatchFiles(t.TempDir(), "[", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}

func TestCountDir(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.clear", clearSample)
	b := writeFile(t, dir, "b.clear", "1\tx\tx\tNN\t_\t0\troot\t_\n")
	writeFile(t, dir, "skip.txt", "ignored\n\n\n")

	var out bytes.Buffer
	run, err := CountDir(dir, "clear", Options{Sorted: true}, &out)
	require.NoError(t, err)

	assert.Equal(t, a+" 2 3\n"+b+" 0 1\n[2, 4]\n", out.String())
	require.Len(t, run.Files, 2)
	assert.Equal(t, "clear", run.Ext)
	assert.Equal(t, dir, run.Dir)
	assert.False(t, run.CountedAt.IsZero())

	// Totals are the sum of the per-file counts.
	var sentences, words int
	for _, fc := range run.Files {
		sentences += fc.Sentences
		words += fc.Words
	}
	assert.Equal(t, sentences, run.Sentences)
	assert.Equal(t, words, run.Words)
}

func TestCountDir_Predicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.clear", clearSample)

	var out bytes.Buffer
	run, err := CountDir(dir, ".clear", Options{Predicates: true}, &out)
	require.NoError(t, err)
	assert.Equal(t, a+" 2 3 2\n[2, 3, 2]\n", out.String())
	assert.Equal(t, 2, run.Predicates)
}

func TestCountDir_NoMatches(t *testing.T) {
	var out bytes.Buffer
	run, err := CountDir(t.TempDir(), "clear", Options{}, &out)
	require.NoError(t, err)
	assert.Equal(t, "[0, 0]\n", out.String())
	assert.Empty(t, run.Files)
}

func TestCountDir_UnreadableFileStopsRun(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	dir := t.TempDir()
	a := writeFile(t, dir, "a.clear", clearSample)
	bad := writeFile(t, dir, "b.clear", clearSample)
	require.NoError(t, os.Chmod(bad, 0o000))
	t.Cleanup(func() { os.Chmod(bad, 0o644) })

	var out bytes.Buffer
	_, err := CountDir(dir, "clear", Options{Sorted: true}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	// Lines printed before the failure stay printed; no totals follow.
	assert.Equal(t, a+" 2 3\n", out.String())
}
