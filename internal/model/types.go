package model

import "time"

// CPUSnapshot holds the cumulative CPU time buckets at one point in time.
// gopsutil reports them as seconds; they only grow while the host is up.
type CPUSnapshot struct {
	User    float64
	Nice    float64
	System  float64
	Idle    float64
	Iowait  float64
	Irq     float64
	Softirq float64
	Steal   float64
}

// Total is the sum of every bucket.
func (s CPUSnapshot) Total() float64 {
	return s.User + s.Nice + s.System + s.Idle + s.Iowait + s.Irq + s.Softirq + s.Steal
}

// IdleTotal counts idle plus iowait time.
func (s CPUSnapshot) IdleTotal() float64 { return s.Idle + s.Iowait }

// Active is everything that is not idle.
func (s CPUSnapshot) Active() float64 { return s.Total() - s.IdleTotal() }

// MemoryStats holds RAM totals in KiB.
type MemoryStats struct {
	TotalKiB     uint64 `json:"total_kib"`
	AvailableKiB uint64 `json:"available_kib"`
}

func (m MemoryStats) UsedKiB() uint64 {
	if m.AvailableKiB > m.TotalKiB {
		return 0
	}
	return m.TotalKiB - m.AvailableKiB
}

// UsedPercent is 0 when the total is 0.
func (m MemoryStats) UsedPercent() float64 {
	if m.TotalKiB == 0 {
		return 0
	}
	return float64(m.UsedKiB()) * 100 / float64(m.TotalKiB)
}

// MountUsage is one mounted filesystem's usage tuple. Fstype is carried so
// the aggregator can drop memory-backed pseudo-filesystems.
type MountUsage struct {
	Fstype   string
	SizeKiB  uint64
	UsedKiB  uint64
	AvailKiB uint64
}

// DiskAggregate sums usage across all real mounts.
type DiskAggregate struct {
	TotalKiB uint64 `json:"total_kib"`
	UsedKiB  uint64 `json:"used_kib"`
	AvailKiB uint64 `json:"avail_kib"`
}

func (d DiskAggregate) UsedPercent() float64 {
	if d.TotalKiB == 0 {
		return 0
	}
	return float64(d.UsedKiB) * 100 / float64(d.TotalKiB)
}

// ProcessRow is one process table entry as reported by the OS.
type ProcessRow struct {
	PID        int32   `json:"pid"`
	Command    string  `json:"command"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
}

// Report is the full snapshot handed to the renderer. The *OK/Known flags
// mark sections that degraded to "unavailable" instead of a value.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Hostname    string    `json:"hostname"`
	OS          string    `json:"os"`
	Uptime      string    `json:"uptime"`

	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
	LoadOK bool    `json:"load_ok"`

	CPUPercent float64 `json:"cpu_percent"`

	Memory   MemoryStats `json:"memory"`
	MemoryOK bool        `json:"memory_ok"`

	Disk   DiskAggregate `json:"disk"`
	DiskOK bool          `json:"disk_ok"`

	TopCPU  []ProcessRow `json:"top_cpu"`
	TopMem  []ProcessRow `json:"top_mem"`
	ProcsOK bool         `json:"procs_ok"`

	LoggedInUsers int  `json:"logged_in_users"`
	UsersOK       bool `json:"users_ok"`

	FailedLogins      int  `json:"failed_logins"`
	FailedLoginsKnown bool `json:"failed_logins_known"`
}
