package record

// TypeProcessed is the wire type tag of a processed-record message.
const TypeProcessed = "PROCESSED"

// Processed is the JSON message emitted for every accepted DATA record.
// Field order matches the firmware's wire layout.
type Processed struct {
	Type           string  `json:"type"`
	Timestamp      uint32  `json:"timestamp"`
	Latitude       float32 `json:"latitude"`
	Longitude      float32 `json:"longitude"`
	Elevation      float32 `json:"elevation"`
	PCI            int16   `json:"pci"`
	CellID         uint32  `json:"cell_id"`
	RSRP           int8    `json:"rsrp"`
	RSRQ           int8    `json:"rsrq"`
	RSSI           int     `json:"rssi"`
	SINR           int8    `json:"sinr"`
	IsAnomaly      bool    `json:"is_anomaly"`
	RecordNum      uint32  `json:"record_num"`
	RSSICalculated bool    `json:"rssi_is_calculated"`
}

// NewProcessed builds the outbound message for a record. The rssi argument
// is the final value (measured or estimated); calculated marks the latter.
func NewProcessed(r Record, rssi int, calculated bool, recordNum uint32) Processed {
	return Processed{
		Type:           TypeProcessed,
		Timestamp:      r.Timestamp,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Elevation:      r.Elevation,
		PCI:            r.PCI,
		CellID:         r.CellID,
		RSRP:           r.RSRP,
		RSRQ:           r.RSRQ,
		RSSI:           rssi,
		SINR:           r.SINR,
		IsAnomaly:      r.Anomalous(),
		RecordNum:      recordNum,
		RSSICalculated: calculated,
	}
}
