package inir

import (
	"strings"
	"time"
)

// TokenSource supplies line-delimited ASCII tokens from the sensor
// stream. Implementations are not safe for concurrent readers.
type TokenSource interface {
	// Available reports whether a token is waiting to be read.
	Available() bool
	// ReadToken returns the next token, blocking up to a short timeout.
	ReadToken() (string, error)
	Close() error
}

// pollInterval spaces out polls of the source so a slow UART doesn't
// spin the CPU. Tests shorten this.
var pollInterval = 500 * time.Millisecond

// maxReadsPerPoll caps reads per poll, bounding worst-case latency when
// the source streams garbage continuously.
const maxReadsPerPoll = 20

// ReadFrame assembles one 7 token frame from src within timeout.
//
// The stream may be picked up mid-frame, so anything received before
// the next start marker is treated as noise and discarded, as are
// tokens that fail to decode as printable ASCII. Returns
// FrameTimeoutError if a full frame does not arrive in time.
func ReadFrame(src TokenSource, timeout time.Duration) (Frame, error) {
	var message []string
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		reads := 0
		for src.Available() && reads < maxReadsPerPoll {
			reads++
			token, err := src.ReadToken()
			if err != nil {
				// treat as line noise, not fatal
				continue
			}
			token = strings.TrimSpace(token)
			if !printable(token) {
				continue
			}
			if len(message) == 0 && !strings.EqualFold(token, StartMarker) {
				// not the start char and nothing stored yet, keep waiting
				continue
			}
			message = append(message, token)
			if strings.EqualFold(token, EndMarker) {
				break
			}
		}
		if len(message) == frameLen {
			break
		}
	}
	if len(message) < frameLen {
		return nil, &FrameTimeoutError{Partial: message}
	}
	return Frame(message), nil
}

func printable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
