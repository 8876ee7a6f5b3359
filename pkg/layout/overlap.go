package layout

import (
	"math"
	"sort"
	"strconv"
)

// Partition groups events sharing an identical start and end and ranks each
// group by value, ties keeping input order. Every member of a group of n
// gets TotalSplits n and a distinct SplitIndex in 0..n-1. The input is not
// modified.
func Partition(events []ProcessedEvent) []ProcessedEvent {
	out := make([]ProcessedEvent, len(events))
	copy(out, events)

	groups := make(map[string][]int)
	var order []string
	for i, e := range out {
		k := intervalKey(e)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	for _, k := range order {
		idx := groups[k]
		sort.SliceStable(idx, func(a, b int) bool {
			return out[idx[a]].Value < out[idx[b]].Value
		})
		for rank, i := range idx {
			out[i].SplitIndex = rank
			out[i].TotalSplits = len(idx)
			out[i].IsOverlapping = len(idx) > 1
		}
	}
	return out
}

// intervalKey compares times numerically so "8:00" and "08:00" coincide.
// Unparseable times fall back to their text.
func intervalKey(e ProcessedEvent) string {
	s, en := TimeToHours(e.Start), TimeToHours(e.End)
	if math.IsNaN(s) || math.IsNaN(en) {
		return e.Start + "|" + e.End
	}
	return strconv.FormatFloat(s, 'f', 4, 64) + "|" + strconv.FormatFloat(en, 'f', 4, 64)
}
