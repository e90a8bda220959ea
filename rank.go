package main

import (
	"sort"

	"sysreport/internal/model"
)

type sortKey string

const (
	byCPU sortKey = "cpu"
	byMem sortKey = "mem"
)

// topBy returns the top n rows ordered descending by the chosen percentage.
// The sort is stable so ties keep their source order, and the input slice is
// left untouched.
func topBy(rows []model.ProcessRow, key sortKey, n int) []model.ProcessRow {
	ranked := append([]model.ProcessRow(nil), rows...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if key == byMem {
			return ranked[i].MemPercent > ranked[j].MemPercent
		}
		return ranked[i].CPUPercent > ranked[j].CPUPercent
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
