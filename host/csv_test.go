package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "measurements.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRecords(t *testing.T) {
	path := writeCSV(t, `Time,Latitude,Longitude,Elevation,PCI,Cell_Id,RSRP,RSRQ,RSSI,SINR
2014-04-21 22:32:23,47.8531,13.2151,600.5,257,902570,-94,-13,-85,12
2014-04-21 22:32:24,47.8532,13.2152,600.7,257.0,902570.0,-95,-13,,5
`)

	records, err := readRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, uint32(1398119543), records[0].Timestamp)
	assert.InDelta(t, 47.8531, records[0].Latitude, 1e-4)
	assert.Equal(t, int16(257), records[0].PCI)
	assert.Equal(t, uint32(902570), records[0].CellID)
	assert.Equal(t, int8(-85), records[0].RSSI)
	assert.False(t, records[0].MissingRSSI())

	// Integer columns written with a decimal part still parse, and the
	// empty RSSI cell becomes the missing-value sentinel.
	assert.Equal(t, int16(257), records[1].PCI)
	assert.Equal(t, int8(0), records[1].RSSI)
	assert.True(t, records[1].MissingRSSI())
}

func TestReadRecords_ColumnOrderIndependent(t *testing.T) {
	path := writeCSV(t, `RSSI,Time,SINR,Latitude,Longitude,Elevation,PCI,Cell_Id,RSRP,RSRQ
-85,2014-04-21 22:32:23,12,47.8531,13.2151,600.5,257,902570,-94,-13
`)

	records, err := readRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int8(-85), records[0].RSSI)
	assert.Equal(t, int8(-94), records[0].RSRP)
}

func TestReadRecords_MissingColumn(t *testing.T) {
	path := writeCSV(t, `Time,Latitude,Longitude,Elevation,PCI,Cell_Id,RSRP,RSRQ
2014-04-21 22:32:23,47.8531,13.2151,600.5,257,902570,-94,-13
`)

	_, err := readRecords(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RSSI")
}

func TestReadRecords_FileNotFound(t *testing.T) {
	_, err := readRecords(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	assert.Equal(t, uint32(1398119543), parseTimestamp("2014-04-21 22:32:23"))
	assert.Equal(t, uint32(0), parseTimestamp("not a time"))
	assert.Equal(t, uint32(0), parseTimestamp(""))
}
