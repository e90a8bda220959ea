package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"sysreport/internal/cmdexec"
	"sysreport/internal/format"
	"sysreport/internal/model"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Source abstracts read access to the OS counters the report consumes.
// Every method is a one-shot synchronous read with no caching.
type Source interface {
	CPUSnapshot() (model.CPUSnapshot, error)
	MemoryStats() (model.MemoryStats, error)
	DiskUsage() ([]model.MountUsage, error)
	ProcessTable() ([]model.ProcessRow, error)
	LoggedInUsers() (int, error)
	FailedLogins() (int, error)
	LoadAverages() (l1, l5, l15 float64, err error)
	Uptime() (string, error)
	OSIdentity() (string, error)
	Hostname() (string, error)
}

// newSource is swapped for a fixture source in tests.
var newSource = func() Source { return systemSource{} }

// systemSource reads live counters through gopsutil.
type systemSource struct{}

func (systemSource) CPUSnapshot() (model.CPUSnapshot, error) {
	times, err := cpu.Times(false)
	if err != nil {
		return model.CPUSnapshot{}, fmt.Errorf("read cpu times: %w", err)
	}
	if len(times) == 0 {
		return model.CPUSnapshot{}, errors.New("no aggregate cpu times reported")
	}
	t := times[0]
	return model.CPUSnapshot{
		User:    t.User,
		Nice:    t.Nice,
		System:  t.System,
		Idle:    t.Idle,
		Iowait:  t.Iowait,
		Irq:     t.Irq,
		Softirq: t.Softirq,
		Steal:   t.Steal,
	}, nil
}

func (systemSource) MemoryStats() (model.MemoryStats, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return model.MemoryStats{}, fmt.Errorf("read memory stats: %w", err)
	}
	return model.MemoryStats{TotalKiB: v.Total / 1024, AvailableKiB: v.Available / 1024}, nil
}

func (systemSource) DiskUsage() ([]model.MountUsage, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}
	seen := make(map[string]bool, len(parts))
	var mounts []model.MountUsage
	for _, p := range parts {
		if seen[p.Mountpoint] {
			continue
		}
		u, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue // stale or inaccessible mount, not worth failing the section
		}
		seen[p.Mountpoint] = true
		mounts = append(mounts, model.MountUsage{
			Fstype:   p.Fstype,
			SizeKiB:  u.Total / 1024,
			UsedKiB:  u.Used / 1024,
			AvailKiB: u.Free / 1024,
		})
	}
	return mounts, nil
}

func (systemSource) ProcessTable() ([]model.ProcessRow, error) {
	ps, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("read process table: %w", err)
	}
	rows := make([]model.ProcessRow, 0, len(ps))
	for _, p := range ps {
		name, _ := p.Name()
		if name == "" {
			continue
		}
		cpuPct, _ := p.CPUPercent()
		memPct, _ := p.MemoryPercent()
		rows = append(rows, model.ProcessRow{
			PID:        p.Pid,
			Command:    name,
			CPUPercent: cpuPct,
			MemPercent: float64(memPct),
		})
	}
	return rows, nil
}

func (systemSource) LoggedInUsers() (int, error) {
	users, err := host.Users()
	if err != nil {
		return 0, fmt.Errorf("read login sessions: %w", err)
	}
	return len(users), nil
}

const failedLoginTool = "lastb"

func (systemSource) FailedLogins() (int, error) {
	if !cmdexec.Exists(failedLoginTool) {
		return 0, fmt.Errorf("%s not installed", failedLoginTool)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := cmdexec.Output(ctx, failedLoginTool)
	if err != nil {
		return 0, fmt.Errorf("run %s: %w", failedLoginTool, err)
	}
	return countFailedLoginLines(string(out)), nil
}

// countFailedLoginLines counts btmp entries, skipping the trailer the tool
// appends ("btmp begins ...") and blank lines.
func countFailedLoginLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "btmp begins") {
			continue
		}
		n++
	}
	return n
}

func (systemSource) LoadAverages() (float64, float64, float64, error) {
	avg, err := load.Avg()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("read load averages: %w", err)
	}
	return avg.Load1, avg.Load5, avg.Load15, nil
}

func (systemSource) Uptime() (string, error) {
	up, err := host.Uptime()
	if err != nil {
		return "", fmt.Errorf("read uptime: %w", err)
	}
	return format.FormatUptime(up), nil
}

func (systemSource) OSIdentity() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("read host info: %w", err)
	}
	if info.Platform != "" {
		id := format.TitleCaseWord(info.Platform)
		if info.PlatformVersion != "" {
			id += " " + info.PlatformVersion
		}
		return id, nil
	}
	// No structured identity; fall back to kernel name/version.
	return strings.TrimSpace(info.OS + " " + info.KernelVersion), nil
}

func (systemSource) Hostname() (string, error) {
	return os.Hostname()
}
