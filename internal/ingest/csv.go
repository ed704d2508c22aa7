package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/vrh/internal/distance"
)

// ReadPoints parses a point cloud from r: one row per point, one
// floating-point coordinate per field. Uses encoding/csv with
// FieldsPerRecord left at its default (first row's width), so a ragged
// row surfaces as a wrapped *csv.ParseError via ErrRaggedRows. A
// non-numeric cell is reported with its row/column position.
func ReadPoints(r io.Reader) ([]distance.Vec, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var points []distance.Vec
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: row %d: %w: %w", row, ErrRaggedRows, err)
		}

		vec := make(distance.Vec, len(record))
		for col, field := range record {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				return nil, fmt.Errorf("ingest: row %d col %d: invalid coordinate %q: %w", row, col, field, perr)
			}
			vec[col] = v
		}
		points = append(points, vec)
		row++
	}

	if len(points) == 0 {
		return nil, ErrEmptyCloud
	}
	return points, nil
}
