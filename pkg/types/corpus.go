// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for clear-corpus: the count
// records produced by the counter and stored by the history database, and the
// configuration structs loaded through viper.
package types

import "time"

// FileCount holds the counts for a single corpus file.
type FileCount struct {
	// Path is the file path as matched by the directory glob.
	Path string `json:"path" yaml:"path"`

	// Sentences is the number of blank lines in the file.
	Sentences int `json:"sentences" yaml:"sentences"`

	// Words is the number of non-blank lines in the file.
	Words int `json:"words" yaml:"words"`

	// Predicates is the number of rows carrying a pb= marker.
	Predicates int `json:"predicates" yaml:"predicates"`
}

// CorpusCount holds the per-file and aggregate counts of one counting run.
type CorpusCount struct {
	// ID is the history database row id; zero until the run is recorded.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	Dir   string      `json:"dir" yaml:"dir"`
	Ext   string      `json:"ext" yaml:"ext"`
	Files []FileCount `json:"files" yaml:"files"`

	Sentences  int `json:"sentences" yaml:"sentences"`
	Words      int `json:"words" yaml:"words"`
	Predicates int `json:"predicates" yaml:"predicates"`

	CountedAt time.Time `json:"counted_at" yaml:"counted_at"`
}

// Add appends fc to the run and updates the totals.
func (c *CorpusCount) Add(fc FileCount) {
	c.Files = append(c.Files, fc)
	c.Sentences += fc.Sentences
	c.Words += fc.Words
	c.Predicates += fc.Predicates
}
