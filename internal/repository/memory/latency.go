package memory

import "time"

// Latency holds the artificial delays applied before each operation.
type Latency struct {
	Get    time.Duration
	List   time.Duration
	Write  time.Duration
	Create time.Duration
}

// DefaultLatency mimics a slow hosted backend.
func DefaultLatency() Latency {
	return Latency{
		Get:    300 * time.Millisecond,
		List:   500 * time.Millisecond,
		Write:  500 * time.Millisecond,
		Create: time.Second,
	}
}

// NoLatency disables the artificial delays.
func NoLatency() Latency { return Latency{} }
