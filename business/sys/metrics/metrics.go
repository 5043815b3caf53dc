// Package metrics constructs the metrics the application will track.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// This holds the single instance of the metrics value needed for collecting
// metrics. The expectation is that this is accessed through the package level
// functions below.
var m = struct {
	requests prometheus.Counter
	errors   prometheus.Counter
	panics   prometheus.Counter
	blocks   prometheus.Counter
	records  prometheus.Counter
}{
	requests: promauto.NewCounter(prometheus.CounterOpts{
		Name: "classroom_requests_total",
		Help: "Number of API requests processed.",
	}),
	errors: promauto.NewCounter(prometheus.CounterOpts{
		Name: "classroom_errors_total",
		Help: "Number of API requests that ended in an error.",
	}),
	panics: promauto.NewCounter(prometheus.CounterOpts{
		Name: "classroom_panics_total",
		Help: "Number of panics recovered while processing requests.",
	}),
	blocks: promauto.NewCounter(prometheus.CounterOpts{
		Name: "classroom_blocks_mined_total",
		Help: "Number of blocks mined into the chain.",
	}),
	records: promauto.NewCounter(prometheus.CounterOpts{
		Name: "classroom_records_total",
		Help: "Number of records written into blocks.",
	}),
}

// AddRequest increments the request counter by 1.
func AddRequest() {
	m.requests.Inc()
}

// AddError increments the error counter by 1.
func AddError() {
	m.errors.Inc()
}

// AddPanic increments the panic counter by 1.
func AddPanic() {
	m.panics.Inc()
}

// AddBlockMined increments the mined block counter by 1 and the record
// counter by the number of records the block carries.
func AddBlockMined(records int) {
	m.blocks.Inc()
	m.records.Add(float64(records))
}
