package inir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadFrom(t *testing.T) {
	fastPoll(t)
	src := &fakeSource{tokens: goodFrame}
	reading, err := ReadFrom(src, time.Second)
	assert.NoError(t, err)
	assert.InDelta(t, 29.739, reading.Concentration, 1e-9)
	assert.InDelta(t, 25.05, reading.Temperature, 1e-9)
	assert.Equal(t, "a1aaaa1a", reading.FaultCode)
}

func TestReadFromBadStart(t *testing.T) {
	fastPoll(t)
	// tokens before the start marker are noise, so a frame that never
	// opens with the marker can only time out
	src := &fakeSource{tokens: badStartFrame}
	_, err := ReadFrom(src, 50*time.Millisecond)
	var read *ReadError
	assert.ErrorAs(t, err, &read)
	var timeout *FrameTimeoutError
	assert.ErrorAs(t, err, &timeout)
}

func TestReadFromIntegrity(t *testing.T) {
	fastPoll(t)
	// valid start, corrupt end marker
	frame := Frame{"0000005b", "000489ae", "a1aaaa1a", "00000ba6", "0000031b", "fffffce4", "0000005d"}
	frame[fieldEnd] = "0000005b"
	src := &fakeSource{tokens: frame}
	_, err := ReadFrom(src, 50*time.Millisecond)
	var read *ReadError
	assert.ErrorAs(t, err, &read)
	var integrity *IntegrityError
	assert.ErrorAs(t, err, &integrity)
	assert.Equal(t, "end", integrity.Marker)
}

func TestReadFromMalformed(t *testing.T) {
	fastPoll(t)
	frame := Frame{"0000005b", "notahexv", "a1aaaa1a", "00000ba6", "0000031b", "fffffce4", "0000005d"}
	src := &fakeSource{tokens: frame}
	_, err := ReadFrom(src, time.Second)
	var read *ReadError
	assert.ErrorAs(t, err, &read)
	var malformed *MalformedHexError
	assert.ErrorAs(t, err, &malformed)
}

func TestReadingFaulty(t *testing.T) {
	faulty := &Reading{FaultCode: "a1aaaa1a"}
	assert.True(t, faulty.Faulty())
	clean := &Reading{FaultCode: "aaaaaaaa"}
	assert.False(t, clean.Faulty())
}

func TestReadingFaultDescriptions(t *testing.T) {
	reading := &Reading{FaultCode: "a1aaaa1a"}
	descriptions, err := reading.FaultDescriptions()
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Over Range of Conc.%v.v Operation > Full Scale",
		"Last Reset was because of a Power on Reset",
	}, descriptions)
}

func TestNewSensor(t *testing.T) {
	sensor := NewSensor("")
	assert.Equal(t, DefaultBaud, sensor.Baud)
	assert.Equal(t, DefaultTimeout, sensor.Timeout)
}
