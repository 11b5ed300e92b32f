// Package population writes the end-of-run population snapshot as a
// comma-delimited file, grounded on the teacher's buffered-then-flush
// CSVLogger shape.
package population

import (
	"bufio"
	"fmt"
	"os"

	hepce "github.com/SyndemicsLab/hep-ce-go"
)

// Writer appends Person rows to a single CSV file under a fixed header,
// flushing in batches the way the teacher's CSVLogger appends per-channel
// buffers rather than writing row by row.
type Writer struct {
	path string
	opts hepce.OutputOptions
}

// NewWriter creates a Writer that will (over)write path with the header
// row implied by opts.
func NewWriter(path string, opts hepce.OutputOptions) *Writer {
	return &Writer{path: path, opts: opts}
}

// WriteAll writes the header and one row per Person (spec §6).
func (w *Writer) WriteAll(people []*hepce.Person) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("population: creating %s: %w", w.path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	defer buf.Flush()

	header := hepce.PopulationHeaders(w.opts)
	for i, h := range header {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(h)
	}
	buf.WriteByte('\n')

	for _, p := range people {
		buf.WriteString(p.MakePopulationRow(w.opts))
		buf.WriteByte('\n')
	}
	return buf.Flush()
}
