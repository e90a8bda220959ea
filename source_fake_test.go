package main

import (
	"errors"

	"sysreport/internal/model"
)

// fakeSource scripts every Source read. CPU snapshots are consumed in order,
// repeating the last one once the script runs out.
type fakeSource struct {
	snapshots []model.CPUSnapshot
	snapErr   error
	snapIdx   int

	mem    model.MemoryStats
	memErr error

	mounts  []model.MountUsage
	diskErr error

	procs    []model.ProcessRow
	procsErr error

	users    int
	usersErr error

	failed    int
	failedErr error

	load1, load5, load15 float64
	loadErr              error

	uptime    string
	uptimeErr error

	osID  string
	osErr error

	host    string
	hostErr error
}

func (f *fakeSource) CPUSnapshot() (model.CPUSnapshot, error) {
	if f.snapErr != nil {
		return model.CPUSnapshot{}, f.snapErr
	}
	if len(f.snapshots) == 0 {
		return model.CPUSnapshot{}, errors.New("no scripted snapshots")
	}
	s := f.snapshots[f.snapIdx]
	if f.snapIdx < len(f.snapshots)-1 {
		f.snapIdx++
	}
	return s, nil
}

func (f *fakeSource) MemoryStats() (model.MemoryStats, error) { return f.mem, f.memErr }

func (f *fakeSource) DiskUsage() ([]model.MountUsage, error) { return f.mounts, f.diskErr }

func (f *fakeSource) ProcessTable() ([]model.ProcessRow, error) { return f.procs, f.procsErr }

func (f *fakeSource) LoggedInUsers() (int, error) { return f.users, f.usersErr }

func (f *fakeSource) FailedLogins() (int, error) { return f.failed, f.failedErr }

func (f *fakeSource) LoadAverages() (float64, float64, float64, error) {
	return f.load1, f.load5, f.load15, f.loadErr
}

func (f *fakeSource) Uptime() (string, error) { return f.uptime, f.uptimeErr }

func (f *fakeSource) OSIdentity() (string, error) { return f.osID, f.osErr }

func (f *fakeSource) Hostname() (string, error) { return f.host, f.hostErr }

// newFixtureSource returns deterministic readings: the CPU pair works out to
// exactly 75.00% and the tmpfs mount must vanish from the disk aggregate.
func newFixtureSource() *fakeSource {
	return &fakeSource{
		snapshots: []model.CPUSnapshot{
			{User: 100, System: 50, Idle: 800, Iowait: 50},
			{User: 160, System: 65, Idle: 820, Iowait: 55},
		},
		mem: model.MemoryStats{TotalKiB: 2097152, AvailableKiB: 1048576},
		mounts: []model.MountUsage{
			{Fstype: "ext4", SizeKiB: 104857600, UsedKiB: 52428800, AvailKiB: 52428800},
			{Fstype: "tmpfs", SizeKiB: 8388608, UsedKiB: 8388607, AvailKiB: 1},
		},
		procs: []model.ProcessRow{
			{PID: 101, Command: "nginx", CPUPercent: 12.5, MemPercent: 1.2},
			{PID: 202, Command: "postgres", CPUPercent: 8.25, MemPercent: 22.5},
			{PID: 303, Command: "redis-server", CPUPercent: 3, MemPercent: 4},
		},
		users:  2,
		failed: 7,
		load1:  0.42, load5: 0.36, load15: 0.30,
		uptime: "1d2h",
		osID:   "Ubuntu 22.04",
		host:   "testhost",
	}
}
