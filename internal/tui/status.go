// Package tui renders run options for the terminal and prompts for input.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/simopts/internal/editor"
	"github.com/san-kum/simopts/internal/listener"
	"github.com/san-kum/simopts/internal/param"
)

var (
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

const (
	okMark   = "✓"
	failMark = "✗"
)

// RenderOptions renders the whole run option panel of a session.
func RenderOptions(s *editor.Session, ts *param.View) string {
	var b strings.Builder

	b.WriteString(title.Render("Simulation options: "+s.Simulation.Name) + "\n\n")

	lo, hi := ts.Model().SliderRange()
	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		dim.Render("time step"),
		white.Render(ts.String()),
		dim.Render(fmt.Sprintf("(slider %.3f..%.3f s)", lo, hi)),
	))

	g := s.Geodetic.Selected()
	b.WriteString(fmt.Sprintf("  %s %s  %s\n\n",
		dim.Render("geodetic "),
		white.Render(g.Title()),
		dim.Render(s.Geodetic.SelectedDescription()),
	))

	b.WriteString(RenderListeners(s.Listeners))
	return b.String()
}

// RenderListeners renders one row per listener with its current
// validation status. Every row is validated again on each call.
func RenderListeners(r *listener.Registry) string {
	var b strings.Builder
	b.WriteString(cyan.Render(fmt.Sprintf("listeners (%d)", r.Size())) + "\n")

	if r.Size() == 0 {
		b.WriteString(dim.Render("  none") + "\n")
		return b.String()
	}
	for i := 0; i < r.Size(); i++ {
		id, _ := r.ElementAt(i)
		v, _ := r.Status(i)
		b.WriteString(RenderRow(i, id, v) + "\n")
	}
	return b.String()
}

func RenderRow(i int, id string, v listener.Verdict) string {
	mark := green.Render(okMark)
	if !v.OK() {
		mark = red.Render(failMark)
	}
	row := fmt.Sprintf("  %s %s %s", dim.Render(fmt.Sprintf("%2d", i)), mark, white.Render(id))
	if !v.OK() {
		row += "  " + dim.Render(v.String())
	}
	return row
}
