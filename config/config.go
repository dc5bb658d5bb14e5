package config

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type SensorConf struct {
	Device   string
	Baud     int
	Timeout  *Duration
	Interval *Duration
}

type EndpointsConf struct {
	Mqtt struct {
		Broker string
	}
	Api string
}

type Duration struct {
	Duration time.Duration
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return err
	}
	val, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	d.Duration = val
	return nil
}

// Configuration structure
type Config struct {
	// yaml fields
	Sensor    SensorConf
	Endpoints EndpointsConf
}

// Open configuration from disk.
func Open() (*Config, error) {
	file, err := os.Open(ConfigPath("gasmon.yml"))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return OpenReader(file)
}

// Open configuration from a reader.
func OpenReader(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return OpenRaw(data)
}

// Open configuration from []byte.
func OpenRaw(data []byte) (*Config, error) {
	conf := &Config{}
	err := yaml.Unmarshal(data, conf)
	if err != nil {
		return nil, err
	}
	return conf, nil
}

// Interval between sensor readings, defaulted.
func (conf *SensorConf) ReadInterval() time.Duration {
	if conf.Interval != nil {
		return conf.Interval.Duration
	}
	return 30 * time.Second
}

// ReadTimeout for one sensor reading. Zero means the sensor default.
func (conf *SensorConf) ReadTimeout() time.Duration {
	if conf.Timeout != nil {
		return conf.Timeout.Duration
	}
	return 0
}

func Must(conf *Config, err error) *Config {
	if err != nil {
		panic(err)
	}
	return conf
}

// helpers

// Resolve a configuration file under .config/gasmon
func ConfigPath(p string) string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = path.Join(os.Getenv("HOME"), ".config")
	}
	return path.Join(config, "gasmon", p)
}
