// Package datarecording stores simulation results in flat tabular form.
// Two backends are available, CSV files and SQLite databases.
package datarecording

import (
	"github.com/rs/xid"

	"github.com/sarchlab/chipletsim/simulation"
)

// A Recorder is a backend that can record simulation results.
type Recorder interface {
	// AddResult records one simulation result.
	AddResult(r simulation.Result)

	// Flush writes all buffered results to the underlying storage.
	Flush()

	// Close flushes and releases the underlying storage.
	Close() error
}

// RecorderBuilder can build a Recorder.
type RecorderBuilder struct {
	backendType string
	filename    string
}

// MakeRecorderBuilder creates a RecorderBuilder that, by default, builds a
// CSV recorder with a generated filename.
func MakeRecorderBuilder() RecorderBuilder {
	return RecorderBuilder{
		backendType: "csv",
	}
}

// WithCSVBackend sets the recorder to write a CSV file.
func (b RecorderBuilder) WithCSVBackend() RecorderBuilder {
	b.backendType = "csv"
	return b
}

// WithSQLiteBackend sets the recorder to write a SQLite database.
func (b RecorderBuilder) WithSQLiteBackend() RecorderBuilder {
	b.backendType = "sqlite"
	return b
}

// WithFilename sets the output filename, without extension.
func (b RecorderBuilder) WithFilename(filename string) RecorderBuilder {
	b.filename = filename
	return b
}

// Build builds the Recorder.
func (b RecorderBuilder) Build() Recorder {
	filename := b.filename
	if filename == "" {
		filename = "chipletsim_results_" + xid.New().String()
	}

	switch b.backendType {
	case "csv":
		return NewCSVBackend(filename)
	case "sqlite":
		return NewSQLiteBackend(filename)
	default:
		panic("unknown backend type " + b.backendType)
	}
}
