package main

import (
	"fmt"
	"strings"

	"sysreport/internal/format"
	"sysreport/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 64

// styles groups the lipgloss styles the renderer applies. With color off
// every style is the zero style, which renders text unchanged.
type styles struct {
	title     lipgloss.Style
	section   lipgloss.Style
	separator lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, section: plain, separator: plain}
	}
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		separator: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// renderReport renders the report deterministically, sections in Report
// field order, each header followed by a full-width rule.
func renderReport(r model.Report, st styles) string {
	var b strings.Builder
	rule := st.separator.Render(strings.Repeat("─", ruleWidth))

	b.WriteString(st.title.Render("SERVER HEALTH REPORT") + "\n")
	b.WriteString(rule + "\n")
	writeKV(&b, "Generated:", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	writeKV(&b, "Host:", r.Hostname)
	writeKV(&b, "OS:", r.OS)
	writeKV(&b, "Uptime:", r.Uptime)
	if r.LoadOK {
		writeKV(&b, "Load:", fmt.Sprintf("%.2f %.2f %.2f", r.Load1, r.Load5, r.Load15))
	} else {
		writeKV(&b, "Load:", unavailable)
	}

	section(&b, st, rule, "CPU")
	writeKV(&b, "Usage:", fmt.Sprintf("%s %.2f%%", gaugeBar(r.CPUPercent, 30), r.CPUPercent))

	section(&b, st, rule, "Memory")
	if r.MemoryOK {
		writeKV(&b, "Used:", fmt.Sprintf("%s / %s (%.2f%%)",
			format.HumanKiB(r.Memory.UsedKiB()), format.HumanKiB(r.Memory.TotalKiB), r.Memory.UsedPercent()))
		writeKV(&b, "Free:", format.HumanKiB(r.Memory.AvailableKiB))
	} else {
		writeKV(&b, "Used:", unavailable)
	}

	section(&b, st, rule, "Disk")
	if r.DiskOK {
		writeKV(&b, "Used:", fmt.Sprintf("%s / %s (%.2f%%)",
			format.HumanKiB(r.Disk.UsedKiB), format.HumanKiB(r.Disk.TotalKiB), r.Disk.UsedPercent()))
		writeKV(&b, "Free:", format.HumanKiB(r.Disk.AvailKiB))
	} else {
		writeKV(&b, "Used:", unavailable)
	}

	section(&b, st, rule, "Top processes by CPU")
	writeProcTable(&b, r.TopCPU, r.ProcsOK)

	section(&b, st, rule, "Top processes by memory")
	writeProcTable(&b, r.TopMem, r.ProcsOK)

	section(&b, st, rule, "Sessions")
	if r.UsersOK {
		fmt.Fprintf(&b, "Logged-in users:  %d\n", r.LoggedInUsers)
	} else {
		fmt.Fprintf(&b, "Logged-in users:  %s\n", unavailable)
	}
	if r.FailedLoginsKnown {
		fmt.Fprintf(&b, "Failed logins:    %d\n", r.FailedLogins)
	} else {
		fmt.Fprintf(&b, "Failed logins:    %s\n", unavailable)
	}

	return b.String()
}

func section(b *strings.Builder, st styles, rule, title string) {
	b.WriteString("\n" + st.section.Render(title) + "\n" + rule + "\n")
}

func writeKV(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-12s%s\n", label, value)
}

func writeProcTable(b *strings.Builder, rows []model.ProcessRow, ok bool) {
	if !ok {
		b.WriteString(unavailable + "\n")
		return
	}
	fmt.Fprintf(b, "%6s  %-12s %7s %7s\n", "PID", "COMMAND", "CPU%", "MEM%")
	for _, row := range rows {
		fmt.Fprintf(b, "%6d  %-12s %7.2f %7.2f\n",
			row.PID, format.Truncate(row.Command, 12), row.CPUPercent, row.MemPercent)
	}
}

func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
