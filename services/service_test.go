package services

import (
	"testing"
	"time"

	"github.com/barnybug/gasmon/pubsub/dummy"
)

// blockingService signals startup then blocks, like the real services
// do in Run.
type blockingService struct {
	id      string
	started chan struct{}
}

func (s *blockingService) ID() string {
	return s.id
}

func (s *blockingService) Run() error {
	close(s.started)
	select {}
}

func TestLaunchStartsAllServices(t *testing.T) {
	Publisher = &dummy.Publisher{}
	a := &blockingService{id: "a", started: make(chan struct{})}
	b := &blockingService{id: "b", started: make(chan struct{})}
	serviceMap = map[string]Service{"a": a, "b": b}

	go Launch([]string{"a", "b"})

	// every enabled service starts, even though each blocks forever
	for _, s := range []*blockingService{a, b} {
		select {
		case <-s.started:
		case <-time.After(time.Second):
			t.Fatalf("service %s did not start", s.id)
		}
	}
}
