package pubsub

import (
	"encoding/json"
	"time"
)

type Fields map[string]interface{}

// Event is a single message on the bus. JSON on the wire, with the
// topic and timestamp folded into the payload.
type Event struct {
	Topic     string
	Timestamp time.Time
	Fields    Fields
	Retained  bool
}

const TimeFormat = "2006-01-02 15:04:05.000"

func NewEvent(topic string, fields Fields) *Event {
	timestamp := time.Now().UTC()
	if ts, ok := fields["timestamp"].(string); ok {
		delete(fields, "timestamp")
		timestamp, _ = time.Parse(TimeFormat, ts)
	}
	return &Event{Topic: topic, Timestamp: timestamp, Fields: fields}
}

func (event *Event) Map() map[string]interface{} {
	data := make(map[string]interface{})
	data["topic"] = event.Topic
	data["timestamp"] = event.Timestamp.Format(TimeFormat)
	for k, v := range event.Fields {
		data[k] = v
	}
	return data
}

func (event *Event) Bytes() []byte {
	v, _ := json.Marshal(event.Map())
	return v
}

func (event *Event) String() string {
	return string(event.Bytes())
}

func (event *Event) StringField(name string) string {
	ret, _ := event.Fields[name].(string)
	return ret
}

func (event *Event) FloatField(name string) float64 {
	ret, _ := event.Fields[name].(float64)
	return ret
}

func (event *Event) IntField(name string) int64 {
	ret, _ := event.Fields[name].(float64)
	return int64(ret)
}

func (event *Event) SetField(name string, value interface{}) {
	event.Fields[name] = value
}

func (event *Event) SetRetained(retained bool) {
	event.Retained = retained
}

func (event *Event) Source() string {
	return event.StringField("source")
}

func (event *Event) Device() string {
	return event.StringField("device")
}

// Parse extracts an event from its json form. Returns nil if the
// message is unparseable.
func Parse(msg string, topic string) *Event {
	var fields Fields
	err := json.Unmarshal([]byte(msg), &fields)
	if err != nil {
		return nil
	}
	if t, ok := fields["topic"].(string); ok {
		topic = t
	}
	delete(fields, "topic")
	return NewEvent(topic, fields)
}
