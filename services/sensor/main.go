// Service for monitoring a SGX INIR2-ME-100 methane sensor attached over
// serial uart. Polls the sensor on an interval, publishes gas concentration
// and temperature readings, and raises alerts when the sensor reports
// faults.
package sensor

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/barnybug/gasmon/inir"
	"github.com/barnybug/gasmon/pubsub"
	"github.com/barnybug/gasmon/services"
	"github.com/barnybug/gasmon/util"
)

type reader interface {
	Read() (*inir.Reading, error)
}

// Service sensor
type Service struct {
	devname string
	sensor  reader

	sync.Mutex
	last     *inir.Reading
	lastTime time.Time
}

// ID of the service
func (self *Service) ID() string {
	return "sensor"
}

func (self *Service) Flags() {
	flag.StringVar(&self.devname, "d", "", "serial device")
}

func event(reading *inir.Reading) *pubsub.Event {
	fields := pubsub.Fields{
		"origin":        "inir",
		"source":        "gas01",
		"concentration": reading.Concentration,
		"temp":          reading.Temperature,
		"faults":        reading.FaultCode,
	}
	return pubsub.NewEvent("gas", fields)
}

func (self *Service) readOnce() {
	reading, err := self.sensor.Read()
	if err != nil {
		// one bad reading shouldn't take the monitor down - log and
		// try again next interval
		log.Println("Error reading sensor:", err)
		return
	}

	self.Lock()
	self.last = reading
	self.lastTime = time.Now()
	self.Unlock()

	services.Publisher.Emit(event(reading))

	if reading.Faulty() {
		self.alertFaults(reading)
	}
}

func (self *Service) alertFaults(reading *inir.Reading) {
	descriptions, err := reading.FaultDescriptions()
	if err != nil {
		// an unrecognised fault on a gas sensor is itself alertable
		log.Println("Error decoding fault code:", err)
		services.SendAlert(fmt.Sprintf("gas sensor: unrecognised fault code %q", reading.FaultCode), "", "", 0)
		return
	}
	log.Println("Sensor faults:", descriptions)
	services.SendAlert("gas sensor: "+strings.Join(descriptions, "; "), "", "", 0)
}

func (self *Service) queryStatus(q services.Question) string {
	self.Lock()
	defer self.Unlock()
	if self.last == nil {
		return "no readings yet"
	}
	age := util.ShortDuration(time.Now().Sub(self.lastTime))
	return fmt.Sprintf("%.4f%%v/v %.2f°C faults:%s (%s ago)",
		self.last.Concentration, self.last.Temperature, self.last.FaultCode, age)
}

func (self *Service) QueryHandlers() services.QueryHandlers {
	return services.QueryHandlers{
		"status": services.TextHandler(self.queryStatus),
		"help":   services.StaticHandler("status: get the last reading"),
	}
}

// Run the service
func (self *Service) Run() error {
	conf := services.Config.Sensor
	device := self.devname
	if device == "" {
		device = conf.Device
	}
	sensor := inir.NewSensor(device)
	if conf.Baud != 0 {
		sensor.Baud = conf.Baud
	}
	if timeout := conf.ReadTimeout(); timeout != 0 {
		sensor.Timeout = timeout
	}
	self.sensor = sensor
	log.Printf("Reading %s every %s", sensor.Device, conf.ReadInterval())

	self.readOnce() // initial reading
	ticker := util.NewScheduler(0, conf.ReadInterval())
	for range ticker.C {
		self.readOnce()
	}
	return nil
}
