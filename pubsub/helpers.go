package pubsub

import "sync"

type eventChannel struct {
	C      chan *Event
	topics []Topic
}

func (ch eventChannel) matches(topic string) bool {
	for _, t := range ch.topics {
		if t.Match(topic) {
			return true
		}
	}
	return false
}

// A FilteredSubscriber filters a raw event channel client-side.
type FilteredSubscriber struct {
	id           string
	channels     []eventChannel
	channelsLock sync.Mutex
}

func NewFilteredSubscriber(id string, ch <-chan *Event) *FilteredSubscriber {
	sub := &FilteredSubscriber{id: id}
	go sub.run(ch)
	return sub
}

func (sub *FilteredSubscriber) ID() string {
	return sub.id
}

func (sub *FilteredSubscriber) run(ch <-chan *Event) {
	for event := range ch {
		sub.channelsLock.Lock()
		for _, ch := range sub.channels {
			if ch.matches(event.Topic) {
				ch.C <- event
			}
		}
		sub.channelsLock.Unlock()
	}
}

func (sub *FilteredSubscriber) Subscribe(topics ...Topic) <-chan *Event {
	ch := eventChannel{
		C:      make(chan *Event, 16),
		topics: topics,
	}
	sub.channelsLock.Lock()
	sub.channels = append(sub.channels, ch)
	sub.channelsLock.Unlock()
	return ch.C
}

func (sub *FilteredSubscriber) Close(channel <-chan *Event) {
	sub.channelsLock.Lock()
	var channels []eventChannel
	for _, ch := range sub.channels {
		if channel == (<-chan *Event)(ch.C) {
			close(ch.C)
		} else {
			channels = append(channels, ch)
		}
	}
	sub.channels = channels
	sub.channelsLock.Unlock()
}
