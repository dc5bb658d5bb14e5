package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExact(t *testing.T) {
	topic := Exact("gas")
	assert.True(t, topic.Match("gas"))
	assert.False(t, topic.Match("gas/faults"))
	assert.False(t, topic.Match("alert"))
}

func TestPrefix(t *testing.T) {
	topic := Prefix("gas")
	assert.True(t, topic.Match("gas"))
	assert.True(t, topic.Match("gas/faults"))
	assert.False(t, topic.Match("gasx"))
}

func TestAll(t *testing.T) {
	assert.True(t, All().Match("anything"))
}
