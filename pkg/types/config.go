// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Defaults applied when neither a flag, an environment variable, nor the
// config file sets a value.
const (
	DefaultPOSPrefix = "VB"
	DefaultInExt     = "conll"
	DefaultOutExt    = "clear"
	DefaultDBPath    = "clear-corpus.db"
)

// ConversionConfig holds settings for the convert stage.
type ConversionConfig struct {
	// POSPrefix selects the predicates whose semantic roles are kept
	// (e.g. "VB" keeps VB, VBD, VBZ, ...). Used when the command line
	// omits the prefix argument.
	POSPrefix string `json:"pos_prefix" yaml:"pos_prefix" mapstructure:"pos_prefix"`

	// InExt is the input file extension matched in batch mode.
	InExt string `json:"in_ext" yaml:"in_ext" mapstructure:"in_ext"`

	// OutExt is the extension given to converted files in batch mode.
	OutExt string `json:"out_ext" yaml:"out_ext" mapstructure:"out_ext"`

	// Force reconverts files whose output already exists.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}

// CountConfig holds settings for the count stage.
type CountConfig struct {
	// Sorted prints files in lexical order instead of directory order.
	Sorted bool `json:"sorted" yaml:"sorted" mapstructure:"sorted"`

	// Predicates adds a pb= predicate count to every report line.
	Predicates bool `json:"predicates" yaml:"predicates" mapstructure:"predicates"`

	// Record stores each run in the history database.
	Record bool `json:"record" yaml:"record" mapstructure:"record"`
}

// HistoryConfig holds settings for the count history database.
type HistoryConfig struct {
	// DBPath is the SQLite database file. Parent directories are created.
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`
}

// Config groups all stage configurations. It mirrors the layout of
// clear-corpus.yaml.
type Config struct {
	Convert ConversionConfig `json:"convert" yaml:"convert" mapstructure:"convert"`
	Count   CountConfig      `json:"count" yaml:"count" mapstructure:"count"`
	History HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
}
