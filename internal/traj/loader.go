package traj

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a delimited trajectory table from path. The first line is a
// header and is discarded; every following non-empty line must carry at
// least three numeric fields, read positionally as (t seconds, x km, y km).
// Trailing columns are ignored. The load is atomic: any malformed row fails
// the whole table and no partial result is returned.
func Load(path string) (*Trajectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 2 {
		return nil, &LoadError{Path: path, Wrapped: ErrEmptyTable}
	}

	tr := &Trajectory{}
	for n, line := range lines[1:] {
		lineNo := n + 2 // header is line 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields, err := splitRow(line)
		if err != nil {
			return nil, &LoadError{Path: path, Line: lineNo, Wrapped: fmt.Errorf("%w: %v", ErrMalformedTable, err)}
		}
		if len(fields) < 3 {
			return nil, &LoadError{Path: path, Line: lineNo, Wrapped: fmt.Errorf("%w: need 3 columns, got %d", ErrMalformedTable, len(fields))}
		}

		var vals [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
			if err != nil {
				return nil, &LoadError{Path: path, Line: lineNo, Wrapped: fmt.Errorf("%w: column %d: %q is not numeric", ErrMalformedTable, i+1, fields[i])}
			}
			vals[i] = v
		}

		tr.T = append(tr.T, vals[0])
		tr.X = append(tr.X, vals[1])
		tr.Y = append(tr.Y, vals[2])
	}

	if tr.Len() == 0 {
		return nil, &LoadError{Path: path, Wrapped: ErrEmptyTable}
	}
	return tr, nil
}

// splitRow splits one data row, accepting comma or whitespace delimiters.
func splitRow(line string) ([]string, error) {
	if strings.Contains(line, ",") {
		r := csv.NewReader(strings.NewReader(line))
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		return r.Read()
	}
	return strings.Fields(line), nil
}
