package datarecording

import (
	"encoding/csv"
	"os"

	"github.com/sarchlab/chipletsim/simulation"
)

// CSVBackend is a Recorder that writes results to a CSV file, one row per
// result, preceded by a header row.
type CSVBackend struct {
	file      *os.File
	csvWriter *csv.Writer
}

// NewCSVBackend creates a CSVBackend writing to filename plus a ".csv"
// extension.
func NewCSVBackend(filename string) *CSVBackend {
	file, err := os.OpenFile(filename+".csv",
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}

	b := &CSVBackend{
		file:      file,
		csvWriter: csv.NewWriter(file),
	}

	err = b.csvWriter.Write(simulation.Header())
	if err != nil {
		panic(err)
	}

	return b
}

// AddResult writes one result row.
func (b *CSVBackend) AddResult(r simulation.Result) {
	err := b.csvWriter.Write(r.Row())
	if err != nil {
		panic(err)
	}
}

// Flush flushes the CSV writer.
func (b *CSVBackend) Flush() {
	b.csvWriter.Flush()
}

// Close flushes the CSV writer and closes the file.
func (b *CSVBackend) Close() error {
	b.Flush()
	return b.file.Close()
}
