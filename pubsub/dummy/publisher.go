package dummy

import "github.com/barnybug/gasmon/pubsub"

// Publisher captures emitted events, for testing.
type Publisher struct {
	Events []*pubsub.Event
}

func (pub *Publisher) ID() string {
	return "dummy"
}

func (pub *Publisher) Emit(ev *pubsub.Event) {
	pub.Events = append(pub.Events, ev)
}

func (pub *Publisher) Close() {
}
