package inir

import (
	"encoding/hex"
	"math"
	"strconv"
)

// Concentration converts the hex PPM field to percent by volume.
func Concentration(value string) (float64, error) {
	ppm, err := parseHex(value)
	if err != nil {
		return 0, err
	}
	return float64(ppm) / 10000, nil
}

// Temperature converts the hex temperature field (kelvin * 10) to
// Celsius, rounded to 2 decimal places (half to even).
func Temperature(value string) (float64, error) {
	dk, err := parseHex(value)
	if err != nil {
		return 0, err
	}
	celsius := float64(dk)/10 - 273.15
	return math.RoundToEven(celsius*100) / 100, nil
}

// Conversions supported by DecodeSingleHexValue.
const (
	ASCII   = "ascii"
	Decimal = "decimal"
)

// DecodeSingleHexValue decodes a 2 character hex value either to the
// ASCII character it encodes, or to its integer value. Returns a string
// or an int depending on the conversion.
func DecodeSingleHexValue(value string, conversion string) (interface{}, error) {
	if len(value) != 2 {
		return nil, ErrInvalidLength
	}
	switch conversion {
	case ASCII:
		b, err := hex.DecodeString(value)
		if err != nil {
			return nil, &MalformedHexError{Value: value, Err: err}
		}
		return string(b), nil
	case Decimal:
		v, err := parseHex(value)
		if err != nil {
			return nil, err
		}
		return int(v), nil
	default:
		return nil, ErrUnsupportedConversion
	}
}

func parseHex(value string) (uint64, error) {
	v, err := strconv.ParseUint(value, 16, 64)
	if err != nil {
		return 0, &MalformedHexError{Value: value, Err: err}
	}
	return v, nil
}
