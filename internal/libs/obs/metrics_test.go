package obs

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRegistered(t *testing.T) {
	collectors := []prometheus.Collector{Searches, SearchResults, Toggles, Resets, Fallbacks}
	for _, c := range collectors {
		err := prometheus.Register(c)
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			t.Errorf("expected collector to be registered already, got %v", err)
		}
	}
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(Resets)
	Resets.Inc()
	if got := testutil.ToFloat64(Resets); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}

	Toggles.WithLabelValues("true").Inc()
	if got := testutil.ToFloat64(Toggles.WithLabelValues("true")); got < 1 {
		t.Errorf("expected toggle counter >= 1, got %v", got)
	}
}
