package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EaseCHAOS/easechaos/pkg/agenda"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Agenda lists what is running now and what comes next
func Agenda(a agenda.Agenda) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Now") + "\n")
	if len(a.Current) == 0 {
		b.WriteString(dimStyle.Render("  Nothing running right now") + "\n")
	}
	for _, s := range a.Current {
		fmt.Fprintf(&b, "  %s %s %s\n",
			timeStyle.Render(s.Start.Format("15:04")),
			nameStyle.Render(s.Value),
			dimStyle.Render("until "+s.End.Format("15:04")))
	}

	b.WriteString("\n" + titleStyle.Render("Later today") + "\n")
	if len(a.Upcoming) == 0 {
		b.WriteString(dimStyle.Render("  No more classes today") + "\n")
	}
	for _, course := range a.Upcoming {
		b.WriteString("  " + nameStyle.Render(course.Course) + "\n")
		for _, s := range course.Sessions {
			fmt.Fprintf(&b, "    %s-%s %s\n",
				timeStyle.Render(s.Start.Format("15:04")),
				s.End.Format("15:04"),
				s.Value)
		}
	}
	return b.String()
}

// Exams lists grouped exam sittings day by day
func Exams(groups []timetable.ExamGroup) string {
	if len(groups) == 0 {
		return dimStyle.Render("No exams in this range") + "\n"
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(g.Day) + "\n")
		for _, s := range g.Subjects {
			b.WriteString("  " + nameStyle.Render(s.Name) + "\n")
			for _, e := range s.Exams {
				line := fmt.Sprintf("    %s %s", timeStyle.Render(e.Start+"-"+e.End), e.Class)
				if e.Location != "" {
					line += " @ " + e.Location
				}
				if e.Invigilator != "" {
					line += dimStyle.Render(" (" + e.Invigilator + ")")
				}
				b.WriteString(line + "\n")
			}
		}
	}
	return b.String()
}
