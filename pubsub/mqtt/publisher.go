package mqtt

import (
	"github.com/barnybug/gasmon/pubsub"
)

// Publisher for mqtt
type Publisher struct {
	broker *Broker
}

func (pub *Publisher) ID() string {
	return pub.broker.ID()
}

// Emit an event
func (pub *Publisher) Emit(ev *pubsub.Event) {
	token := pub.broker.client.Publish(topicPrefix+ev.Topic, 1, ev.Retained, ev.Bytes())
	token.Wait()
}

func (pub *Publisher) Close() {
	pub.broker.client.Disconnect(250)
}
