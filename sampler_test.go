package main

import (
	"errors"
	"testing"
	"time"

	"sysreport/internal/model"
)

func newTestSampler(src Source) (*CPUSampler, *time.Duration) {
	s := NewCPUSampler(src)
	var slept time.Duration
	s.sleep = func(d time.Duration) { slept += d }
	return s, &slept
}

func TestSampleComputesUtilization(t *testing.T) {
	src := &fakeSource{snapshots: []model.CPUSnapshot{
		{User: 100, System: 50, Idle: 800, Iowait: 50},
		{User: 160, System: 65, Idle: 820, Iowait: 55},
	}}
	s, slept := newTestSampler(src)

	got, err := s.Sample(time.Second)
	if err != nil {
		t.Fatalf("Sample error: %v", err)
	}
	if got != 75.00 {
		t.Fatalf("Sample = %v, want 75.00", got)
	}
	if *slept != time.Second {
		t.Fatalf("slept %v, want 1s", *slept)
	}
}

func TestSampleZeroWindowSkipsSleep(t *testing.T) {
	src := newFixtureSource()
	s, slept := newTestSampler(src)

	if _, err := s.Sample(0); err != nil {
		t.Fatalf("Sample error: %v", err)
	}
	if *slept != 0 {
		t.Fatalf("slept %v, want 0", *slept)
	}
}

func TestSampleZeroDeltaIsZero(t *testing.T) {
	snap := model.CPUSnapshot{User: 100, Idle: 900}
	src := &fakeSource{snapshots: []model.CPUSnapshot{snap, snap}}
	s, _ := newTestSampler(src)

	got, err := s.Sample(0)
	if err != nil {
		t.Fatalf("Sample error: %v", err)
	}
	if got != 0 {
		t.Fatalf("Sample = %v, want 0.00 for zero elapsed ticks", got)
	}
}

func TestSampleCounterResetIsZero(t *testing.T) {
	src := &fakeSource{snapshots: []model.CPUSnapshot{
		{User: 500, Idle: 500},
		{User: 10, Idle: 10}, // counters went backwards
	}}
	s, _ := newTestSampler(src)

	got, err := s.Sample(0)
	if err != nil {
		t.Fatalf("Sample error: %v", err)
	}
	if got != 0 {
		t.Fatalf("Sample = %v, want 0.00 after counter reset", got)
	}
}

func TestSampleActiveRollbackClamps(t *testing.T) {
	src := &fakeSource{snapshots: []model.CPUSnapshot{
		{User: 100, Idle: 400},
		{User: 90, Idle: 500}, // idle advanced, active rolled back
	}}
	s, _ := newTestSampler(src)

	got, err := s.Sample(0)
	if err != nil {
		t.Fatalf("Sample error: %v", err)
	}
	if got != 0 {
		t.Fatalf("Sample = %v, want 0.00 clamp, never negative", got)
	}
}

func TestSampleSnapshotErrorIsFatal(t *testing.T) {
	src := &fakeSource{snapErr: errors.New("proc unreadable")}
	s, _ := newTestSampler(src)

	if _, err := s.Sample(0); err == nil {
		t.Fatalf("expected error when CPU counters are unreadable")
	}
}

func TestUtilizationPercentBounds(t *testing.T) {
	cases := []struct {
		name   string
		first  model.CPUSnapshot
		second model.CPUSnapshot
		want   float64
	}{
		{"all active", model.CPUSnapshot{Idle: 100}, model.CPUSnapshot{User: 50, Idle: 100}, 100},
		{"all idle", model.CPUSnapshot{Idle: 100}, model.CPUSnapshot{Idle: 200}, 0},
		{"rounded", model.CPUSnapshot{}, model.CPUSnapshot{User: 1, Idle: 2}, 33.33},
	}

	for _, tc := range cases {
		got := utilizationPercent(tc.first, tc.second)
		if got != tc.want {
			t.Fatalf("%s: utilizationPercent = %v, want %v", tc.name, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Fatalf("%s: utilizationPercent = %v out of [0,100]", tc.name, got)
		}
	}
}
