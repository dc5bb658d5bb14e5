// Package inir reads the SGX INIR2-ME-100 infrared methane sensor.
//
// The sensor streams readings over its UART as frames of 7 newline
// terminated lines, each 8 hex characters:
//
//	0000005b   start character '['
//	000489ae   gas concentration (PPM)
//	a1aaaa1a   fault code, one character per fault category
//	00000ba6   temperature (kelvin * 10)
//	0000031b   CRC
//	fffffce4   1's complement of CRC
//	0000005d   end character ']'
//
// Protocol reference:
// https://www.sgxsensortech.com/content/uploads/2019/03/AN1_INIR_Communication-_Algorithms-_V9.pdf
package inir

import "time"

// DefaultTimeout bounds how long a single reading may take.
const DefaultTimeout = 4 * time.Second

// Sensor reads gas concentration frames from a serial device. The
// device is opened for the duration of one reading and closed on every
// exit path, so a failed read never wedges the port.
type Sensor struct {
	Device  string
	Baud    int
	Timeout time.Duration
}

// NewSensor returns a Sensor for the given device with the default
// baud rate and timeout. An empty device means DefaultDevice.
func NewSensor(device string) *Sensor {
	return &Sensor{Device: device, Baud: DefaultBaud, Timeout: DefaultTimeout}
}

// A Reading is one decoded frame from the sensor. It holds no
// references to the frame it was decoded from.
type Reading struct {
	Concentration float64 // gas concentration, percent by volume
	Temperature   float64 // sensor temperature, Celsius
	FaultCode     string  // raw 8 character fault code
}

// Faulty reports whether any fault category is flagged.
func (r *Reading) Faulty() bool {
	for i := 0; i < len(r.FaultCode); i++ {
		if c := r.FaultCode[i]; c != 'a' && c != 'A' {
			return true
		}
	}
	return false
}

// FaultDescriptions resolves the reading's fault code against the
// fault table. Deferred to a method so readings without faults don't
// pay for the lookup.
func (r *Reading) FaultDescriptions() ([]string, error) {
	return DecodeFaultCode(r.FaultCode)
}

// Read takes a single reading from the sensor.
func (s *Sensor) Read() (*Reading, error) {
	src, err := Open(s.Device, s.Baud)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	defer src.Close()
	return ReadFrom(src, s.Timeout)
}

// ReadFrom assembles, validates and decodes one frame from src. Any
// failure is returned as a ReadError wrapping the cause.
func ReadFrom(src TokenSource, timeout time.Duration) (*Reading, error) {
	frame, err := ReadFrame(src, timeout)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	if err := frame.Validate(); err != nil {
		return nil, &ReadError{Err: err}
	}
	concentration, err := Concentration(frame[fieldConcentration])
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	temperature, err := Temperature(frame[fieldTemperature])
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	return &Reading{
		Concentration: concentration,
		Temperature:   temperature,
		FaultCode:     frame[fieldFaults],
	}, nil
}
