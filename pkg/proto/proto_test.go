package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantKind    Kind
		wantPayload string
	}{
		{"led on", "LED=ON", KindLEDOn, ""},
		{"led off", "LED=OFF", KindLEDOff, ""},
		{"stream start", "STREAM=START", KindStreamStart, ""},
		{"stream stop", "STREAM=STOP", KindStreamStop, ""},
		{"stream reset", "STREAM=RESET", KindStreamReset, ""},
		{"rgb", "RGB=10,20,30", KindRGB, "10,20,30"},
		{"rgb empty payload", "RGB=", KindRGB, ""},
		{"data", "DATA=1,2,3", KindData, "1,2,3"},
		{"data empty payload", "DATA=", KindData, ""},
		{"lowercase led", "led=on", KindUnknown, ""},
		{"stream bad mode", "STREAM=PAUSE", KindUnknown, ""},
		{"empty line", "", KindUnknown, ""},
		{"garbage", "HELLO", KindUnknown, ""},
		{"rgb prefix of word", "RGBX=1,2,3", KindUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, payload := Classify(tt.line)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantPayload, payload)
		})
	}
}

func TestReplyFormatting(t *testing.T) {
	assert.Equal(t, "ACK=RGB,0,128,255", AckRGB(0, 128, 255))
	assert.Equal(t, "ERR=BAD_RGB,VAL=RGB=a,b,c", ErrBadRGB("RGB=a,b,c"))
	assert.Equal(t, "ERR=PARSE_FAILED,VAL=DATA=x", ErrParseFailed("DATA=x"))
	assert.Equal(t, "ERR=UNKNOWN_CMD,VAL=HELLO", ErrUnknownCmd("HELLO"))
	assert.Equal(t, "ERR=INIT_FAILED,VAL=pwm", ErrInitFailed("pwm"))
	assert.Equal(t, "WARN=MODEL_UNAVAILABLE,VAL=bad magic", WarnModelUnavailable("bad magic"))
}
