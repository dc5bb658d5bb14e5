package mqtt

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	MQTT "github.com/eclipse/paho.mqtt.golang"

	"github.com/barnybug/gasmon/pubsub"
)

// topicPrefix namespaces all gasmon traffic on a shared broker.
const topicPrefix = "gasmon/"

// Broker is a connection to an MQTT broker.
type Broker struct {
	broker string
	client MQTT.Client
}

func NewBroker(broker string, name string) (*Broker, error) {
	// generate a unique client id
	hostname, _ := os.Hostname()
	clientID := fmt.Sprintf("gasmon/%s-%s-%d-%d", name, hostname, os.Getpid(), rand.Int())
	opts := MQTT.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)

	client := MQTT.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Broker{broker: broker, client: client}, nil
}

func (b *Broker) ID() string {
	return "mqtt: " + b.broker
}

func (b *Broker) Publisher() *Publisher {
	return &Publisher{broker: b}
}

// Subscriber subscribes to all gasmon traffic and filters client-side.
func (b *Broker) Subscriber() pubsub.Subscriber {
	events := make(chan *pubsub.Event, 16)
	handler := func(client MQTT.Client, msg MQTT.Message) {
		topic := strings.TrimPrefix(msg.Topic(), topicPrefix)
		event := pubsub.Parse(string(msg.Payload()), topic)
		if event == nil {
			return
		}
		event.SetRetained(msg.Retained())
		events <- event
	}
	if token := b.client.Subscribe(topicPrefix+"#", 1, handler); token.Wait() && token.Error() != nil {
		log.Println("Error subscribing:", token.Error())
	}
	return pubsub.NewFilteredSubscriber(b.ID(), events)
}
