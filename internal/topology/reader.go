package topology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoEdges is returned when an edge list yields no usable edges.
var ErrNoEdges = errors.New("topology: no edges found")

// ReadEdgeList parses "a,b" lines into edges. Blank lines and comments (a '#'
// after optional leading whitespace) are skipped, as are lines that do not
// hold exactly two fields.
func ReadEdgeList(r io.Reader) ([]Edge, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var edges []Edge
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read edge list: %w", err)
		}
		if len(rec) == 0 || strings.HasPrefix(strings.TrimSpace(rec[0]), "#") {
			continue
		}
		if len(rec) != 2 {
			continue
		}
		a, b := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if a == "" || b == "" {
			continue
		}
		line, _ := cr.FieldPos(0)
		x, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("edge list line %d: %w", line, err)
		}
		y, err := strconv.Atoi(b)
		if err != nil {
			return nil, fmt.Errorf("edge list line %d: %w", line, err)
		}
		edges = append(edges, Edge{A: NodeID(x), B: NodeID(y)})
	}
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	return edges, nil
}

// LoadEdgeList reads an edge list file and builds its graph.
func LoadEdgeList(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	edges, err := ReadEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(edges)
}
