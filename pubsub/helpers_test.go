package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilteredSubscriber(t *testing.T) {
	raw := make(chan *Event, 4)
	sub := NewFilteredSubscriber("test", raw)
	ch := sub.Subscribe(Exact("gas"))
	raw <- NewEvent("alert", Fields{})
	raw <- NewEvent("gas", Fields{"concentration": 29.739})

	ev := <-ch
	assert.Equal(t, "gas", ev.Topic)
	assert.Equal(t, 29.739, ev.FloatField("concentration"))
}

func TestFilteredSubscriberClose(t *testing.T) {
	raw := make(chan *Event, 4)
	sub := NewFilteredSubscriber("test", raw)
	ch := sub.Subscribe(All())
	sub.Close(ch)
	_, open := <-ch
	assert.False(t, open)
}
