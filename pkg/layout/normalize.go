package layout

import (
	"regexp"
	"strings"

	"github.com/EaseCHAOS/easechaos/pkg/palette"
)

// "CE 3A 141 (P)" in "CE 3A 141 (P) SMITH (GF1)"
var continuationPattern = regexp.MustCompile(`\b[A-Z]{2,3} \d[A-Z] \d{3}(?:\s*\([^)]+\))?`)

// SplitLines breaks a slot value into its non-blank lines
func SplitLines(value string) []string {
	var lines []string
	for _, l := range strings.Split(value, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// ContinuationGroup returns the class-and-course prefix that ties together
// sessions of one class, or "" when line has none.
func ContinuationGroup(line string) string {
	return continuationPattern.FindString(line)
}

// Normalize turns a merged slot into one event per distinct line. Repeated
// lines are dropped. With collapseSameCourse set, lines that all carry the
// first line's course code collapse into the first line.
//
// Positions are left zero; Place fills them per view.
func Normalize(slot MergedSlot, collapseSameCourse bool) []ProcessedEvent {
	lines := dedupe(SplitLines(slot.Value))

	if collapseSameCourse && len(lines) > 1 {
		if code := palette.CourseCode(lines[0]); code != "" && allShareCode(lines, code) {
			lines = lines[:1]
		}
	}

	events := make([]ProcessedEvent, 0, len(lines))
	for i, line := range lines {
		events = append(events, ProcessedEvent{
			Start:             slot.Start,
			End:               slot.End,
			Value:             line,
			HorizontalSpan:    slot.HorizontalSpan,
			ContinuationGroup: ContinuationGroup(line),
			LineIndex:         i,
			LineCount:         len(lines),
			SplitIndex:        i,
			TotalSplits:       len(lines),
		})
	}
	return events
}

func dedupe(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, l := range lines {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func allShareCode(lines []string, code string) bool {
	for _, l := range lines[1:] {
		if palette.CourseCode(l) != code {
			return false
		}
	}
	return true
}
