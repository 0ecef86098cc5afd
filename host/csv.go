package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/itohio/ltesense/pkg/record"
)

// readRecords parses the Salzburg LTE dataset CSV layout
// (Time, Latitude, Longitude, Elevation, PCI, Cell_Id, RSRP, RSRQ, RSSI,
// SINR) into measurement records. Empty cells become zero, which for the
// RSSI column doubles as the missing-value sentinel the firmware fills in.
func readRecords(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{"Time", "Latitude", "Longitude", "Elevation", "PCI", "Cell_Id", "RSRP", "RSRQ", "RSSI", "SINR"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("CSV missing column %q", name)
		}
	}

	var records []record.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		records = append(records, record.Record{
			Timestamp: parseTimestamp(row[col["Time"]]),
			Latitude:  float32(cellFloat(row[col["Latitude"]])),
			Longitude: float32(cellFloat(row[col["Longitude"]])),
			Elevation: float32(cellFloat(row[col["Elevation"]])),
			PCI:       int16(cellInt(row[col["PCI"]])),
			CellID:    uint32(cellInt(row[col["Cell_Id"]])),
			RSRP:      int8(cellInt(row[col["RSRP"]])),
			RSRQ:      int8(cellInt(row[col["RSRQ"]])),
			RSSI:      int8(cellInt(row[col["RSSI"]])),
			SINR:      int8(cellInt(row[col["SINR"]])),
		})
	}

	return records, nil
}

// parseTimestamp converts the dataset's "2006-01-02 15:04:05" timestamps
// to Unix seconds. Unparseable cells become zero, matching how the rest
// of the row degrades.
func parseTimestamp(s string) uint32 {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return 0
	}
	return uint32(t.Unix())
}

// cellFloat parses a CSV cell, treating empty or malformed cells as zero.
func cellFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// cellInt parses a CSV cell holding an integer that may be written with a
// decimal part (the dataset mixes "12" and "12.0").
func cellInt(s string) int64 {
	return int64(cellFloat(s))
}
