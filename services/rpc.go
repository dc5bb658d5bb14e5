package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/barnybug/gasmon/pubsub"
)

// Query with `query`, waiting for `timeout` for results.
func Query(query string, timeout time.Duration) []*pubsub.Event {
	ch := QueryChannel(query, timeout)
	events := []*pubsub.Event{}
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

// QueryChannel sends `query` and returns a channel of replies, closed
// after `timeout`.
func QueryChannel(query string, timeout time.Duration) <-chan *pubsub.Event {
	replyTo := fmt.Sprintf("_rpc.%d", rand.Int())
	ch := Subscriber.Subscribe(pubsub.Exact(replyTo))

	SendQuery(query, "rpc", "", replyTo)

	// close the listener after timeout
	go func() {
		time.Sleep(timeout)
		Subscriber.Close(ch)
	}()

	return ch
}
