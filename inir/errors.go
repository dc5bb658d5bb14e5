package inir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned by DecodeSingleHexValue for input
	// that is not exactly 2 characters.
	ErrInvalidLength = errors.New("hex value should be 2 chars")
	// ErrUnsupportedConversion is returned by DecodeSingleHexValue for
	// conversions other than ascii or decimal.
	ErrUnsupportedConversion = errors.New("only ascii or decimal conversion supported")
	// ErrEmptyFaultCode is returned for an empty fault code string. The
	// sensor always sends 8 characters.
	ErrEmptyFaultCode = errors.New("empty fault code")
)

// FrameTimeoutError is returned when a complete 7 token frame could not
// be assembled in time. Partial holds whatever tokens had arrived, for
// diagnostics.
type FrameTimeoutError struct {
	Partial []string
}

func (e *FrameTimeoutError) Error() string {
	return fmt.Sprintf("timed out reading frame: got %d tokens %v", len(e.Partial), e.Partial)
}

// IntegrityError indicates a frame without the expected start or end
// marker - the stream was desynchronized or corrupted in transit.
type IntegrityError struct {
	Marker string // "start" or "end"
	Value  string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("bad %s char, got %q", e.Marker, e.Value)
}

// MalformedHexError indicates a field that failed to parse as hex.
type MalformedHexError struct {
	Value string
	Err   error
}

func (e *MalformedHexError) Error() string {
	return fmt.Sprintf("malformed hex value %q", e.Value)
}

func (e *MalformedHexError) Unwrap() error { return e.Err }

// UnknownFaultError indicates a fault digit with no entry in its
// category table. Never swallowed - masking an unrecognized fault on a
// gas sensor is a safety concern.
type UnknownFaultError struct {
	Category int
	Digit    byte
}

func (e *UnknownFaultError) Error() string {
	return fmt.Sprintf("fault value %q not in known faults for category %d", e.Digit, e.Category)
}

// ReadError wraps any failure encountered while taking a reading, so
// callers have a single type to handle at the reading boundary.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "sensor read failed: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }
