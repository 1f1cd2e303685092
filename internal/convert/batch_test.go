// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCorpus writes the named input files into a fresh temp directory and
// returns their paths and the directory.
func setupCorpus(t *testing.T, files map[string]string) (map[string]string, string) {
	t.Helper()
	dir := t.TempDir()
	inDir := filepath.Join(dir, "conll")
	require.NoError(t, os.MkdirAll(inDir, 0o755))

	paths := make(map[string]string, len(files))
	for name, content := range files {
		p := filepath.Join(inDir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		paths[name] = p
	}
	return paths, dir
}

var goodCorpus = corpus(
	tok(1, "John", "NNP", "2", "nsubj", "_", "_", "A0"),
	tok(2, "gave", "VBD", "0", "root", "01", "give.01", "_"),
	"",
)

func TestOutputPath(t *testing.T) {
	opts := BatchOptions{OutDir: "out", OutExt: ".clear"}
	assert.Equal(t, filepath.Join("out", "wsj_0001.clear"), OutputPath("in/wsj_0001.conll", opts))

	opts.OutExt = "clear"
	assert.Equal(t, filepath.Join("out", "wsj_0001.clear"), OutputPath("wsj_0001.conll", opts))
}

func TestConvertOne(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		preCreate  bool
		force      bool
		wantStatus Status
		wantLog    string
	}{
		{
			name:       "successful conversion",
			content:    goodCorpus,
			wantStatus: StatusConverted,
			wantLog:    "converted: a (1 sentences, 2 tokens)",
		},
		{
			name:       "skip existing output",
			content:    goodCorpus,
			preCreate:  true,
			wantStatus: StatusSkipped,
			wantLog:    "skipped: a (already exists)",
		},
		{
			name:       "force overwrites existing output",
			content:    goodCorpus,
			preCreate:  true,
			force:      true,
			wantStatus: StatusConverted,
			wantLog:    "converted:",
		},
		{
			name:       "malformed input",
			content:    "1 too short\n\n",
			wantStatus: StatusFailed,
			wantLog:    "failed:  a",
		},
		{
			name:       "unterminated final sentence warns",
			content:    tok(1, "Hi", "UH", "0", "root", "_", "_"),
			wantStatus: StatusConverted,
			wantLog:    "last 1 rows not written",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, dir := setupCorpus(t, map[string]string{"a.conll": tt.content})
			opts := BatchOptions{
				OutDir:    filepath.Join(dir, "clear"),
				OutExt:    "clear",
				POSPrefix: "VB",
				Force:     tt.force,
			}
			outPath := filepath.Join(opts.OutDir, "a.clear")
			if tt.preCreate {
				require.NoError(t, os.MkdirAll(opts.OutDir, 0o755))
				require.NoError(t, os.WriteFile(outPath, []byte("existing"), 0o644))
			}

			var log bytes.Buffer
			status := ConvertOne(paths["a.conll"], opts, &log)

			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, log.String(), tt.wantLog)

			if tt.wantStatus == StatusConverted {
				data, err := os.ReadFile(outPath)
				require.NoError(t, err)
				assert.NotEqual(t, "existing", string(data))
			}
		})
	}
}

func TestConvertBatch(t *testing.T) {
	paths, dir := setupCorpus(t, map[string]string{
		"a.conll": goodCorpus,
		"b.conll": goodCorpus,
		"c.conll": "1 broken\n\n",
	})
	opts := BatchOptions{
		OutDir:    filepath.Join(dir, "clear"),
		OutExt:    "clear",
		POSPrefix: "VB",
	}

	// Pre-create output for "b" to trigger skip.
	require.NoError(t, os.MkdirAll(opts.OutDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(opts.OutDir, "b.clear"), []byte("existing"), 0o644))

	var log bytes.Buffer
	result := ConvertBatch([]string{paths["a.conll"], paths["b.conll"], paths["c.conll"]}, opts, &log)

	assert.Equal(t, BatchResult{Converted: 1, Skipped: 1, Failed: 1}, result)
	assert.True(t, result.HasFailures())
	assert.Equal(t, 3, result.Total())
	assert.Contains(t, log.String(), "Batch summary: 1 converted, 1 skipped, 1 failed (total: 3)")
}

func TestConvertBatch_Empty(t *testing.T) {
	var log bytes.Buffer
	result := ConvertBatch(nil, BatchOptions{OutDir: t.TempDir(), OutExt: "clear"}, &log)
	assert.Zero(t, result.Total())
	assert.False(t, result.HasFailures())
}
