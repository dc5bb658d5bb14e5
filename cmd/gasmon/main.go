package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/barnybug/gasmon/services"
	"github.com/barnybug/gasmon/services/api"
	"github.com/barnybug/gasmon/services/sensor"
)

func registerServices() {
	// register available services
	services.Register(&api.Service{})
	services.Register(&sensor.Service{})
}

func usage() {
	fmt.Println("Usage: gasmon COMMAND [SERVICE...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("   run [service...]   Run the given services (default: sensor api)")
	fmt.Println()
}

func main() {
	services.SetupLogging()
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	command := flag.Args()[0]
	ss := flag.Args()[1:]
	switch command {
	case "run":
		run(ss)
	default:
		usage()
	}
}

func run(ss []string) {
	if len(ss) == 0 {
		ss = []string{"sensor", "api"}
	}
	registerServices()
	services.Setup("gasmon")
	defer services.Shutdown()
	services.Launch(ss)
}
