// Package api is a service providing an HTTP JSON API to the gas monitor.
//
// The endpoints supported are:
//
// http://localhost:8724/ - index
//
// http://localhost:8724/reading - the latest sensor reading
//
// http://localhost:8724/faults - fault descriptions for the latest reading
//
// http://localhost:8724/query/{query} - query a service, e.g. http://localhost:8724/query/sensor/status
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/barnybug/gasmon/inir"
	"github.com/barnybug/gasmon/pubsub"
	"github.com/barnybug/gasmon/services"
)

// Service api
type Service struct {
	mu   sync.RWMutex
	last *pubsub.Event
}

// ID of the service
func (service *Service) ID() string {
	return "api"
}

func errorResponse(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), 500)
}

func jsonResponse(w http.ResponseWriter, obj interface{}) {
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	err := enc.Encode(obj)
	if err != nil {
		errorResponse(w, err)
	}
}

func apiIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/html")
	fmt.Fprintf(w, "<html>Gasmon is listening</html>")
}

func (service *Service) latest() *pubsub.Event {
	service.mu.RLock()
	defer service.mu.RUnlock()
	return service.last
}

func (service *Service) apiReading(w http.ResponseWriter, r *http.Request) {
	ev := service.latest()
	if ev == nil {
		http.Error(w, "no readings yet", 404)
		return
	}
	jsonResponse(w, map[string]interface{}{
		"timestamp":     ev.Timestamp.Format(pubsub.TimeFormat),
		"concentration": ev.FloatField("concentration"),
		"temp":          ev.FloatField("temp"),
		"faults":        ev.StringField("faults"),
	})
}

func (service *Service) apiFaults(w http.ResponseWriter, r *http.Request) {
	ev := service.latest()
	if ev == nil {
		http.Error(w, "no readings yet", 404)
		return
	}
	descriptions, err := inir.DecodeFaultCode(ev.StringField("faults"))
	if err != nil {
		errorResponse(w, err)
		return
	}
	if descriptions == nil {
		descriptions = []string{}
	}
	jsonResponse(w, descriptions)
}

func (service *Service) apiQuery(w http.ResponseWriter, r *http.Request) {
	endpoint := r.URL.Path[len("/query/"):]
	q := r.URL.Query().Get("q")
	w.Header().Add("Content-Type", "application/json; charset=utf-8")

	ch := services.QueryChannel(endpoint+" "+q, 500*time.Millisecond)
	for ev := range ch {
		fmt.Fprintf(w, ev.String()+"\r\n")
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}
}

func (service *Service) watch() {
	for ev := range services.Subscriber.Subscribe(pubsub.Exact("gas")) {
		service.mu.Lock()
		service.last = ev
		service.mu.Unlock()
	}
}

func (service *Service) router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", apiIndex)
	router.HandleFunc("/reading", service.apiReading)
	router.HandleFunc("/faults", service.apiFaults)
	router.PathPrefix("/query/").HandlerFunc(service.apiQuery)
	return router
}

// Run the service
func (service *Service) Run() error {
	go service.watch()

	addr := services.Config.Endpoints.Api
	if addr == "" {
		addr = ":8724"
	}
	log.Println("API listening on", addr)
	return http.ListenAndServe(addr, service.router())
}
