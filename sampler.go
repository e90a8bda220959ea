package main

import (
	"math"
	"time"

	"sysreport/internal/model"
)

// CPUSampler derives a utilization percentage from two cumulative snapshots
// separated by a sampling window. The wait is the report's one deliberate
// blocking call.
type CPUSampler struct {
	src   Source
	sleep func(time.Duration)
}

func NewCPUSampler(src Source) *CPUSampler {
	return &CPUSampler{src: src, sleep: time.Sleep}
}

// Sample blocks for the given window and returns utilization in [0, 100].
// Snapshot read errors are fatal to the caller: without this figure the
// report has no headline metric.
func (s *CPUSampler) Sample(window time.Duration) (float64, error) {
	first, err := s.src.CPUSnapshot()
	if err != nil {
		return 0, err
	}
	if window > 0 {
		s.sleep(window)
	}
	second, err := s.src.CPUSnapshot()
	if err != nil {
		return 0, err
	}
	return utilizationPercent(first, second), nil
}

// utilizationPercent is 0.00 when no ticks elapsed or the counters went
// backwards; it never returns a negative value or one above 100.
func utilizationPercent(first, second model.CPUSnapshot) float64 {
	totalDelta := second.Total() - first.Total()
	if totalDelta <= 0 {
		return 0
	}
	activeDelta := second.Active() - first.Active()
	if activeDelta < 0 {
		activeDelta = 0
	}
	pct := activeDelta * 100 / totalDelta
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*100) / 100
}
