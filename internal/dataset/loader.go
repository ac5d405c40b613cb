package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is the launch file read when no other path is configured
const DefaultPath = "spacex_launch_dash.csv"

// Load reads the launch file at path into an immutable dataset.
// Every failure is a *DataLoadError.
func Load(path string) (*Dataset, error) {
	cleanPath := filepath.Clean(path)

	// #nosec G304 - the dataset path is operator-supplied configuration
	file, err := os.Open(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newLoadError(KindMissingFile, cleanPath, err)
		}
		return nil, newLoadError(KindUnreadable, cleanPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Parse(file, cleanPath)
}

// Parse reads launch records from r. source names the input in errors.
func Parse(r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newLoadError(KindUnreadable, source, fmt.Errorf("empty file: no header row"))
		}
		return nil, newLoadError(KindUnreadable, source, err)
	}

	columns, cerr := indexColumns(header)
	if cerr != nil {
		cerr.Path = source
		return nil, cerr
	}

	var launches []Launch
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newLoadError(KindUnreadable, source, err)
		}

		line, _ := reader.FieldPos(0)
		launch, perr := parseRecord(record, columns)
		if perr != nil {
			perr.Path = source
			perr.Line = line
			return nil, perr
		}
		launches = append(launches, launch)
	}

	return newDataset(source, launches), nil
}

// columnIndex maps required columns to their position in a record
type columnIndex struct {
	site    int
	payload int
	booster int
	class   int
}

func indexColumns(header []string) (columnIndex, *DataLoadError) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	for _, required := range RequiredColumns {
		if _, ok := positions[required]; !ok {
			return columnIndex{}, &DataLoadError{
				Kind:   KindMissingColumn,
				Column: required,
				Cause:  fmt.Errorf("header has %d columns, none named %q", len(header), required),
			}
		}
	}

	return columnIndex{
		site:    positions[ColumnSite],
		payload: positions[ColumnPayload],
		booster: positions[ColumnBooster],
		class:   positions[ColumnClass],
	}, nil
}

func parseRecord(record []string, columns columnIndex) (Launch, *DataLoadError) {
	payload, err := parsePayload(record[columns.payload])
	if err != nil {
		return Launch{}, &DataLoadError{Kind: KindMalformed, Column: ColumnPayload, Cause: err}
	}

	class, err := parseClass(record[columns.class])
	if err != nil {
		return Launch{}, &DataLoadError{Kind: KindMalformed, Column: ColumnClass, Cause: err}
	}

	return Launch{
		Site:            strings.TrimSpace(record[columns.site]),
		PayloadMassKg:   payload,
		BoosterCategory: strings.TrimSpace(record[columns.booster]),
		Class:           class,
	}, nil
}

// parsePayload reads a blank cell as an unknown mass (NaN). Unknown masses
// never fall inside a payload range and are skipped by the bounds.
func parsePayload(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(raw, 64)
}

// parseClass accepts integral numbers, including "1.0" style exports
func parseClass(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("class %q is not an integer", raw)
	}
	return int(f), nil
}
