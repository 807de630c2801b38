package chartdata

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Expected CSV header, in order.
var csvHeader = []string{"manufacturer", "model", "pax_typical", "pax_max", "range_km", "status"}

// LoadOptions controls CSV loading behavior.
type LoadOptions struct {
	// SkipErrors drops invalid rows instead of failing the whole load.
	// Skipped rows are logged at warn level when a Logger is set.
	SkipErrors bool

	// Progress is an optional callback invoked after each loaded row with
	// the number of rows loaded so far and the number of data rows.
	// Skipped rows do not invoke it.
	Progress func(loaded, total int)

	// Logger receives per-row diagnostics. Nil disables logging.
	Logger *logrus.Logger
}

// LoadCSV reads aircraft records from r.
//
// The first row must be the header
// manufacturer,model,pax_typical,pax_max,range_km,status. Every record is
// validated; by default the first invalid row aborts the load, while
// SkipErrors trades completeness for resilience.
//
// Example:
//
//	f, err := os.Open("airliners.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	fleet, err := chartdata.LoadCSV(f, chartdata.LoadOptions{SkipErrors: true})
func LoadCSV(r io.Reader, opts LoadOptions) ([]Aircraft, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	if len(rows) == 0 {
		return nil, errors.New("empty csv: missing header")
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	records := rows[1:]
	fleet := make([]Aircraft, 0, len(records))
	for i, row := range records {
		line := i + 2 // 1-based, after the header

		aircraft, err := parseRow(row, line)
		if err == nil {
			err = aircraft.Validate(line)
		}
		if err != nil {
			if !opts.SkipErrors {
				return nil, err
			}
			if opts.Logger != nil {
				opts.Logger.WithError(err).WithField("line", line).Warn("skipping invalid aircraft record")
			}
			continue
		}

		fleet = append(fleet, aircraft)
		if opts.Progress != nil {
			opts.Progress(len(fleet), len(records))
		}
	}
	return fleet, nil
}

func checkHeader(row []string) error {
	for i, want := range csvHeader {
		if i >= len(row) || strings.TrimSpace(strings.ToLower(row[i])) != want {
			return errors.Errorf("unexpected csv header: want %q", strings.Join(csvHeader, ","))
		}
	}
	return nil
}

func parseRow(row []string, line int) (Aircraft, error) {
	paxTypical, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return Aircraft{}, &ErrInvalidRecord{Line: line, Field: "pax_typical", Reason: "not an integer"}
	}
	paxMax, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return Aircraft{}, &ErrInvalidRecord{Line: line, Field: "pax_max", Reason: "not an integer"}
	}
	rangeKm, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
	if err != nil {
		return Aircraft{}, &ErrInvalidRecord{Line: line, Field: "range_km", Reason: "not a number"}
	}

	return Aircraft{
		Manufacturer: strings.TrimSpace(row[0]),
		Model:        strings.TrimSpace(row[1]),
		PaxTypical:   paxTypical,
		PaxMax:       paxMax,
		RangeKm:      rangeKm,
		Status:       strings.TrimSpace(row[5]),
	}, nil
}
