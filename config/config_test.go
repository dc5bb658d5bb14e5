package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ExampleOpenRaw() {
	config, _ := OpenRaw([]byte(ExampleYaml))
	fmt.Println(config.Sensor.Device)
	fmt.Println(config.Endpoints.Mqtt.Broker)
	// Output:
	// /dev/serial0
	// tcp://127.0.0.1:1883
}

func TestDurations(t *testing.T) {
	config, err := OpenRaw([]byte(ExampleYaml))
	assert.NoError(t, err)
	assert.Equal(t, 4*time.Second, config.Sensor.ReadTimeout())
	assert.Equal(t, 30*time.Second, config.Sensor.ReadInterval())
}

func TestDurationDefaults(t *testing.T) {
	config, err := OpenRaw([]byte("sensor:\n  device: /dev/ttyUSB0\n"))
	assert.NoError(t, err)
	assert.Equal(t, time.Duration(0), config.Sensor.ReadTimeout())
	assert.Equal(t, 30*time.Second, config.Sensor.ReadInterval())
}

func TestBadDuration(t *testing.T) {
	_, err := OpenRaw([]byte("sensor:\n  interval: soon\n"))
	assert.Error(t, err)
}

func TestBadYaml(t *testing.T) {
	_, err := OpenRaw([]byte("[not yaml"))
	assert.Error(t, err)
}
