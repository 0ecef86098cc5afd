package record

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldCount is the exact number of comma-separated fields in a DATA payload.
const FieldCount = 10

// Anomaly thresholds for the Salzburg LTE dataset. A record is anomalous
// when RSRP drops below -100 dBm or SINR goes negative.
const (
	AnomalyRSRPThreshold = -100
	AnomalySINRThreshold = 0
)

// Record is one ingested LTE measurement.
// Field order matches the DATA payload:
// timestamp,latitude,longitude,elevation,pci,cell_id,rsrp,rsrq,rssi,sinr
type Record struct {
	Timestamp uint32  // Unix seconds
	Latitude  float32 // degrees
	Longitude float32 // degrees
	Elevation float32 // meters above sea level
	PCI       int16   // Physical Cell Identity (0-503)
	CellID    uint32  // Cell Tower ID
	RSRP      int8    // dBm
	RSRQ      int8    // dB
	RSSI      int8    // dBm, 0 means missing (to be estimated)
	SINR      int8    // dB
}

// Parse parses a DATA payload into a Record. Anything that does not yield
// exactly FieldCount typed fields is an error; no partial record is returned.
func Parse(payload string) (Record, error) {
	parts := strings.Split(payload, ",")
	if len(parts) != FieldCount {
		return Record{}, fmt.Errorf("expected %d fields, got %d", FieldCount, len(parts))
	}

	ts, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	lat, err := strconv.ParseFloat(parts[1], 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(parts[2], 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid longitude: %w", err)
	}

	elev, err := strconv.ParseFloat(parts[3], 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid elevation: %w", err)
	}

	pci, err := strconv.ParseInt(parts[4], 10, 16)
	if err != nil {
		return Record{}, fmt.Errorf("invalid pci: %w", err)
	}

	cellID, err := strconv.ParseUint(parts[5], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid cell_id: %w", err)
	}

	rsrp, err := strconv.ParseInt(parts[6], 10, 8)
	if err != nil {
		return Record{}, fmt.Errorf("invalid rsrp: %w", err)
	}

	rsrq, err := strconv.ParseInt(parts[7], 10, 8)
	if err != nil {
		return Record{}, fmt.Errorf("invalid rsrq: %w", err)
	}

	rssi, err := strconv.ParseInt(parts[8], 10, 8)
	if err != nil {
		return Record{}, fmt.Errorf("invalid rssi: %w", err)
	}

	sinr, err := strconv.ParseInt(parts[9], 10, 8)
	if err != nil {
		return Record{}, fmt.Errorf("invalid sinr: %w", err)
	}

	return Record{
		Timestamp: uint32(ts),
		Latitude:  float32(lat),
		Longitude: float32(lon),
		Elevation: float32(elev),
		PCI:       int16(pci),
		CellID:    uint32(cellID),
		RSRP:      int8(rsrp),
		RSRQ:      int8(rsrq),
		RSSI:      int8(rssi),
		SINR:      int8(sinr),
	}, nil
}

// MissingRSSI reports whether the record came in without a measured RSSI.
// Zero is the dataset's sentinel for a missing measurement.
func (r Record) MissingRSSI() bool {
	return r.RSSI == 0
}

// Anomalous applies the fixed domain thresholds.
func (r Record) Anomalous() bool {
	return int(r.RSRP) < AnomalyRSRPThreshold || int(r.SINR) < AnomalySINRThreshold
}

// Payload formats the record as a DATA command payload, the inverse of Parse.
// Used by the host side when replaying datasets to the device.
func (r Record) Payload() string {
	parts := []string{
		strconv.FormatUint(uint64(r.Timestamp), 10),
		strconv.FormatFloat(float64(r.Latitude), 'f', -1, 32),
		strconv.FormatFloat(float64(r.Longitude), 'f', -1, 32),
		strconv.FormatFloat(float64(r.Elevation), 'f', -1, 32),
		strconv.FormatInt(int64(r.PCI), 10),
		strconv.FormatUint(uint64(r.CellID), 10),
		strconv.FormatInt(int64(r.RSRP), 10),
		strconv.FormatInt(int64(r.RSRQ), 10),
		strconv.FormatInt(int64(r.RSSI), 10),
		strconv.FormatInt(int64(r.SINR), 10),
	}
	return strings.Join(parts, ",")
}
