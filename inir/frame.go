package inir

import "strings"

const (
	// StartMarker is the frame start character '[', hex encoded.
	StartMarker = "0000005b"
	// EndMarker is the frame end character ']', hex encoded.
	EndMarker = "0000005d"
)

// Frame field positions on the wire.
const (
	fieldStart = iota
	fieldConcentration
	fieldFaults
	fieldTemperature
	fieldCRC
	fieldCRCComplement
	fieldEnd
	frameLen
)

// A Frame is one complete 7 token transmission from the sensor, start
// marker through end marker.
type Frame []string

// Validate checks the frame is correctly delimited. The CRC and CRC
// complement fields are carried but not verified: the polynomial is not
// documented in the datasheet.
func (f Frame) Validate() error {
	if !strings.EqualFold(f[fieldStart], StartMarker) {
		return &IntegrityError{Marker: "start", Value: f[fieldStart]}
	}
	if !strings.EqualFold(f[fieldEnd], EndMarker) {
		return &IntegrityError{Marker: "end", Value: f[fieldEnd]}
	}
	return nil
}
