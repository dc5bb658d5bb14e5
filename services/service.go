package services

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/barnybug/gasmon/config"
	"github.com/barnybug/gasmon/pubsub"
	"github.com/barnybug/gasmon/pubsub/mqtt"
)

// Service interface
type Service interface {
	ID() string
	Run() error
}

// ServiceInit interface
type ServiceInit interface {
	Service
	Init() error
}

type Flags interface {
	Flags()
}

var serviceMap map[string]Service = map[string]Service{}
var enabled []Service
var Config *config.Config

var Publisher pubsub.Publisher
var Subscriber pubsub.Subscriber

func SetupLogging() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetOutput(os.Stdout)
}

func SetupFlags() {
	for _, service := range enabled {
		// any service specific flags
		if f, ok := service.(Flags); ok {
			f.Flags()
		}
	}
	flag.Parse()
}

func SetupConfig() {
	conf, err := config.Open()
	if err != nil {
		log.Fatalln("Error reading config:", err)
	}
	Config = conf
}

func SetupBroker(name string) {
	url := os.Getenv("GASMON_MQTT")
	if url == "" && Config != nil {
		url = Config.Endpoints.Mqtt.Broker
	}
	if url == "" {
		log.Fatalln("Set GASMON_MQTT to the mqtt server. eg: tcp://127.0.0.1:1883")
	}

	broker, err := mqtt.NewBroker(url, name)
	if err != nil {
		log.Fatalln("Failed to connect to mqtt:", err)
	}
	Publisher = broker.Publisher()
	Subscriber = broker.Subscriber()
}

func Setup(name string) {
	SetupConfig()
	SetupBroker(name)
}

func Launch(ss []string) {
	enabled = []Service{}
	for _, name := range ss {
		if service, ok := serviceMap[name]; ok {
			enabled = append(enabled, service)
		} else {
			log.Fatalf("Service %s does not exist", name)
		}
	}

	SetupFlags()

	// listen for queries
	go QuerySubscriber()

	for _, service := range enabled {
		if service, ok := service.(ServiceInit); ok {
			err := service.Init()
			if err != nil {
				log.Fatalf("Error init service %s: %s", service.ID(), err.Error())
			}
			log.Printf("Initialized %s\n", service.ID())
		}
	}

	// services block in Run, so all but the last go in the background
	for i, service := range enabled {
		// run heartbeater
		go Heartbeat(service.ID())
		log.Printf("Starting %s\n", service.ID())
		if i < len(enabled)-1 {
			go runService(service)
			continue
		}
		runService(service)
	}
}

func runService(service Service) {
	err := service.Run()
	if err != nil {
		log.Fatalf("Error running service %s: %s", service.ID(), err.Error())
	}
}

func Heartbeat(id string) {
	started := time.Now()
	device := fmt.Sprintf("heartbeat.%s", id)
	fields := pubsub.Fields{
		"device":  device,
		"pid":     os.Getpid(),
		"started": started.Format(time.RFC3339),
	}

	// wait 5 seconds before heartbeating - if the process dies very soon
	time.Sleep(time.Second * 5)

	for {
		uptime := int(time.Now().Sub(started).Seconds())
		fields["uptime"] = uptime
		ev := pubsub.NewEvent("heartbeat", fields)
		ev.SetRetained(true)
		Publisher.Emit(ev)
		time.Sleep(time.Second * 60)
	}
}

func Register(service Service) {
	if _, exists := serviceMap[service.ID()]; exists {
		log.Fatalf("Duplicate service registered: %s", service.ID())
	}
	serviceMap[service.ID()] = service
}

func Shutdown() {
	if Publisher != nil {
		Publisher.Close()
	}
}
