package seismo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseStations reads a STATIONS file: one receiver per line as
// "code network latitude longitude elevation burial_depth". Blank lines and
// lines starting with '#' are skipped. Returned stations carry no ID yet.
func ParseStations(r io.Reader) ([]*Station, error) {
	var stations []*Station

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, fmt.Errorf("line %d: expected 6 fields, got %d", lineNo, len(fields))
		}

		var values [4]float64
		for i, raw := range fields[2:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q: %w", lineNo, raw, err)
			}
			values[i] = v
		}

		stations = append(stations, &Station{
			Code:        fields[0],
			Network:     fields[1],
			Latitude:    values[0],
			Longitude:   values[1],
			Elevation:   values[2],
			BurialDepth: values[3],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stations: %w", err)
	}
	return stations, nil
}
