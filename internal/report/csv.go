// Package report delivers the population history of a finished run: a CSV
// file for plotting and a SQLite archive of past runs.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"graph-forest/internal/sims/wildfire"
)

var csvHeader = []string{"tick", "burning", "forest", "rock"}

// WriteCSV writes one row per tick, numbered from 1.
func WriteCSV(w io.Writer, h wildfire.History) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := 0; i < h.Len(); i++ {
		c := h.At(i)
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(c.Burning),
			strconv.Itoa(c.Forest),
			strconv.Itoa(c.Rock),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the history to path, replacing any existing file.
func SaveCSV(path string, h wildfire.History) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, h); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
