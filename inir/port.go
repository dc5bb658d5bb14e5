package inir

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
)

// DefaultDevice is the Raspberry Pi UART the sensor is usually wired to.
const DefaultDevice = "/dev/serial0"

// Serial parameters from the INIR datasheet: 38400 baud, 8 data bits,
// 2 stop bits, no parity.
const (
	DefaultBaud = 38400
	readTimeout = 2 * time.Second
)

// Port reads line-delimited tokens from the sensor's serial device. A
// background scanner feeds a buffered channel, so Available mirrors the
// UART receive buffer.
type Port struct {
	ser    io.ReadCloser
	tokens chan string
	done   chan struct{}
}

// Open opens and configures the serial device for the sensor.
func Open(device string, baud int) (*Port, error) {
	if device == "" {
		device = DefaultDevice
	}
	if baud == 0 {
		baud = DefaultBaud
	}
	if _, err := os.Stat(device); err != nil {
		return nil, errors.Wrapf(err, "%s not found, is the serial port enabled?", device)
	}
	ser, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		Size:        8,
		StopBits:    serial.Stop2,
		Parity:      serial.ParityNone,
		ReadTimeout: readTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening serial port")
	}
	return newPort(ser), nil
}

func newPort(ser io.ReadCloser) *Port {
	port := &Port{ser: ser, tokens: make(chan string, 64), done: make(chan struct{})}
	go port.scan()
	return port
}

func (p *Port) scan() {
	scanner := bufio.NewScanner(p.ser)
	for scanner.Scan() {
		// the buffer can be full on a noisy line, so the send must not
		// outlive Close
		select {
		case p.tokens <- scanner.Text():
		case <-p.done:
			return
		}
	}
	close(p.tokens)
}

// Available reports whether a token is waiting to be read.
func (p *Port) Available() bool {
	return len(p.tokens) > 0
}

// ReadToken returns the next token, blocking up to the read timeout.
func (p *Port) ReadToken() (string, error) {
	select {
	case token, ok := <-p.tokens:
		if !ok {
			return "", io.EOF
		}
		return token, nil
	case <-time.After(readTimeout):
		return "", errors.New("timed out waiting for token")
	}
}

// Close stops the scanner and releases the serial device.
func (p *Port) Close() error {
	close(p.done)
	return p.ser.Close()
}
