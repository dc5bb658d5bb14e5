package pubsub

// Publisher emits events to the bus.
type Publisher interface {
	ID() string
	Emit(ev *Event)
	Close()
}

// Subscriber delivers events matching a set of topics on a channel.
type Subscriber interface {
	ID() string
	Subscribe(topics ...Topic) <-chan *Event
	Close(<-chan *Event)
}

// Topic selects events by topic string.
type Topic interface {
	Match(topic string) bool
}
