// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpusdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/clear-corpus/pkg/types"
)

// ExportYAML writes the newest limit runs (all when limit <= 0) to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, limit int) error {
	runs, err := s.exportRuns(ctx, limit)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes the newest limit runs (all when limit <= 0) to w as
// indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, limit int) error {
	runs, err := s.exportRuns(ctx, limit)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func (s *Store) exportRuns(ctx context.Context, limit int) ([]types.CorpusCount, error) {
	runs, err := s.Runs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	// Export an empty list rather than null.
	if runs == nil {
		runs = []types.CorpusCount{}
	}
	return runs, nil
}
