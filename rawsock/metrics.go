// File: rawsock/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Optional op counters. The package stays stateless apart from this
// registry pointer, swapped atomically so counting never synchronizes
// the data path.

package rawsock

import (
	"sync/atomic"

	"github.com/momentics/sockcore/control"
)

var metrics atomic.Pointer[control.MetricsRegistry]

// SetMetrics wires descriptor op counters into a registry. Passing nil
// disables counting.
func SetMetrics(m *control.MetricsRegistry) {
	metrics.Store(m)
}

func count(key string) {
	if m := metrics.Load(); m != nil {
		m.Inc(key)
	}
}
