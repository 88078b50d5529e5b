package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBookingCounters(t *testing.T) {
	before := testutil.ToFloat64(BookingsRejected.WithLabelValues(ReasonCapacity))
	BookingsRejected.WithLabelValues(ReasonCapacity).Inc()
	if got := testutil.ToFloat64(BookingsRejected.WithLabelValues(ReasonCapacity)); got != before+1 {
		t.Fatalf("rejected{capacity} = %v, want %v", got, before+1)
	}
}

func TestObserveHTTP(t *testing.T) {
	ObserveHTTP("GET", "/api/classes", 200, 15*time.Millisecond)
	if n := testutil.CollectAndCount(HTTPDuration); n == 0 {
		t.Fatal("expected at least one histogram series")
	}
}
