package config

import "strings"

var ExampleYaml = `
sensor:
  device: /dev/serial0
  baud: 38400
  timeout: 4s
  interval: 30s
endpoints:
  mqtt:
    broker: tcp://127.0.0.1:1883
  api: :8724
`

var ExampleConfig = Must(OpenReader(strings.NewReader(ExampleYaml)))
