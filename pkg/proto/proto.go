package proto

import "strconv"

// Fixed reply lines emitted by the firmware.
const (
	AckLEDOn       = "ACK=LED_ON"
	AckLEDOff      = "ACK=LED_OFF"
	AckStreamStart = "ACK=STREAM_START"
	AckStreamStop  = "ACK=STREAM_STOP"
	AckStreamReset = "ACK=STREAM_RESET"

	ErrNotStreaming = "ERR=NOT_STREAMING"
	ErrCmdTooLong   = "ERR=CMD_TOO_LONG"

	// Ready is printed once after start-up completes.
	Ready = "READY"
)

// Kind classifies an inbound command line.
type Kind int

const (
	KindUnknown Kind = iota
	KindLEDOn
	KindLEDOff
	KindRGB
	KindStreamStart
	KindStreamStop
	KindStreamReset
	KindData
)

// Classify determines the command kind of a trimmed line and returns the
// payload after the '=' for commands that carry one (RGB, DATA).
func Classify(line string) (Kind, string) {
	switch line {
	case "LED=ON":
		return KindLEDOn, ""
	case "LED=OFF":
		return KindLEDOff, ""
	case "STREAM=START":
		return KindStreamStart, ""
	case "STREAM=STOP":
		return KindStreamStop, ""
	case "STREAM=RESET":
		return KindStreamReset, ""
	}

	const (
		rgbPrefix  = "RGB="
		dataPrefix = "DATA="
	)
	if len(line) >= len(rgbPrefix) && line[:len(rgbPrefix)] == rgbPrefix {
		return KindRGB, line[len(rgbPrefix):]
	}
	if len(line) >= len(dataPrefix) && line[:len(dataPrefix)] == dataPrefix {
		return KindData, line[len(dataPrefix):]
	}

	return KindUnknown, ""
}

// AckRGB formats the RGB acknowledgement with the applied (clamped) channel values.
func AckRGB(r, g, b uint8) string {
	return "ACK=RGB," + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b))
}

// ErrBadRGB reports a malformed RGB command, echoing the offending line.
func ErrBadRGB(line string) string {
	return "ERR=BAD_RGB,VAL=" + line
}

// ErrParseFailed reports a DATA record that did not parse, echoing the line.
func ErrParseFailed(line string) string {
	return "ERR=PARSE_FAILED,VAL=" + line
}

// ErrUnknownCmd reports an unrecognized command line.
func ErrUnknownCmd(line string) string {
	return "ERR=UNKNOWN_CMD,VAL=" + line
}

// ErrInitFailed reports a fatal start-up failure of a hardware subsystem.
func ErrInitFailed(subsystem string) string {
	return "ERR=INIT_FAILED,VAL=" + subsystem
}

// WarnModelUnavailable reports a non-fatal learned-model start-up failure.
// The firmware keeps running with the formula estimator only.
func WarnModelUnavailable(reason string) string {
	return "WARN=MODEL_UNAVAILABLE,VAL=" + reason
}
