package main

import (
	"fmt"
	"log/slog"
	"time"

	"sysreport/internal/model"
)

const unavailable = "unavailable"

// pseudoFilesystems are memory-backed mounts excluded from disk totals.
var pseudoFilesystems = map[string]bool{
	"tmpfs":    true,
	"devtmpfs": true,
}

// Assembler runs the fixed read sequence and produces one Report. Non-CPU
// read failures degrade the matching section to "unavailable"; a CPU read
// failure aborts the whole report.
type Assembler struct {
	src     Source
	sampler *CPUSampler
	cfg     Config
	now     func() time.Time
}

// NewAssembler builds an assembler over the given source.
func NewAssembler(src Source, cfg Config) *Assembler {
	return &Assembler{src: src, sampler: NewCPUSampler(src), cfg: cfg, now: timeNow}
}

func (a *Assembler) Build() (model.Report, error) {
	r := model.Report{GeneratedAt: a.now()}

	if name, err := a.src.Hostname(); err == nil {
		r.Hostname = name
	} else {
		r.Hostname = unavailable
		slog.Warn("hostname unavailable", "err", err)
	}

	if id, err := a.src.OSIdentity(); err == nil {
		r.OS = id
	} else {
		r.OS = unavailable
		slog.Warn("os identity unavailable", "err", err)
	}

	if up, err := a.src.Uptime(); err == nil {
		r.Uptime = up
	} else {
		r.Uptime = unavailable
		slog.Warn("uptime unavailable", "err", err)
	}

	if l1, l5, l15, err := a.src.LoadAverages(); err == nil {
		r.Load1, r.Load5, r.Load15 = l1, l5, l15
		r.LoadOK = true
	} else {
		slog.Warn("load averages unavailable", "err", err)
	}

	pct, err := a.sampler.Sample(a.cfg.Interval)
	if err != nil {
		return model.Report{}, fmt.Errorf("cpu counters unavailable: %w", err)
	}
	r.CPUPercent = pct

	if m, err := a.src.MemoryStats(); err == nil {
		r.Memory = m
		r.MemoryOK = true
	} else {
		slog.Warn("memory stats unavailable", "err", err)
	}

	if mounts, err := a.src.DiskUsage(); err == nil {
		r.Disk = aggregateDisk(mounts)
		r.DiskOK = true
	} else {
		slog.Warn("disk usage unavailable", "err", err)
	}

	// One process snapshot, ranked twice, so both top lists reflect the
	// same point in time.
	if rows, err := a.src.ProcessTable(); err == nil {
		r.TopCPU = topBy(rows, byCPU, a.cfg.TopN)
		r.TopMem = topBy(rows, byMem, a.cfg.TopN)
		r.ProcsOK = true
	} else {
		slog.Warn("process table unavailable", "err", err)
	}

	if users, err := a.src.LoggedInUsers(); err == nil {
		r.LoggedInUsers = users
		r.UsersOK = true
	} else {
		slog.Warn("login sessions unavailable", "err", err)
	}

	// A missing or unreadable btmp is defined behavior, not worth a log line.
	if failed, err := a.src.FailedLogins(); err == nil {
		r.FailedLogins = failed
		r.FailedLoginsKnown = true
	}

	return r, nil
}

// aggregateDisk sums the real mounts, skipping the pseudo-filesystem set.
func aggregateDisk(mounts []model.MountUsage) model.DiskAggregate {
	var agg model.DiskAggregate
	for _, m := range mounts {
		if pseudoFilesystems[m.Fstype] {
			continue
		}
		agg.TotalKiB += m.SizeKiB
		agg.UsedKiB += m.UsedKiB
		agg.AvailKiB += m.AvailKiB
	}
	return agg
}
