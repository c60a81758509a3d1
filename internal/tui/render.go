package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/dexboard/internal/render"
)

const barWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	listStyle = lipgloss.NewStyle().
			Width(listWidth).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true)

	bandColors = map[render.Band]lipgloss.Color{
		render.BandHard:   lipgloss.Color("196"),
		render.BandMedium: lipgloss.Color("226"),
		render.BandEasy:   lipgloss.Color("46"),
	}
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("dexboard"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(m.page.Indicator))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.renderList(m.viewport.Height)),
		" ",
		m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderList(height int) string {
	if len(m.cards) == 0 {
		return mutedStyle.Render("(no creatures)")
	}

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(m.cards))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		c := m.cards[i]
		line := fmt.Sprintf("#%03d %s", c.ID, c.Name)
		switch {
		case i == m.cursor:
			line = cursorStyle.Render(line)
		case m.page.State.InSlot(c.ID):
			line = currentStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.searching {
		return m.search.View()
	}
	if m.status != "" {
		return errorStyle.Render(m.status)
	}

	keys := []string{
		"[↑↓] Move", "[Enter] View", "[P] Compare", "[R] Reset",
		"[S] Stat: " + render.StatTitle(m.currentStat()), "[/] Search", "[Q] Quit",
	}
	return mutedStyle.Render(strings.Join(keys, "  "))
}

// renderPage draws the page body for the content pane
func renderPage(page render.Page, width int) string {
	switch page.Kind {
	case render.KindUnavailable:
		return errorStyle.Render(page.Message)
	case render.KindComparison:
		if page.Comparison != nil {
			return renderComparison(*page.Comparison)
		}
	case render.KindDetail:
		if page.Detail != nil {
			return renderDetail(*page.Detail, width)
		}
	case render.KindGallery:
		if page.Gallery != nil {
			return renderGallery(*page.Gallery)
		}
	}
	return ""
}

func renderGallery(view render.GalleryView) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Gallery (%d)", len(view.Cards))))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Select a creature and press Enter to open it."))
	b.WriteString("\n")
	return b.String()
}

func renderDetail(view render.DetailView, width int) string {
	var b strings.Builder

	name := fmt.Sprintf("#%03d %s", view.ID, view.Name)
	if view.Highlighted {
		name = currentStyle.Render(name + " [compare]")
	} else {
		name = titleStyle.Render(name)
	}
	if view.Legendary {
		name += " " + mutedStyle.Render("legendary")
	}
	b.WriteString(name + "\n")
	b.WriteString(view.TypeLine + "\n")
	b.WriteString(view.Measurements + "\n")
	b.WriteString(view.Abilities + "\n\n")

	b.WriteString(headingStyle.Render("Base stats") + "\n")
	b.WriteString(renderRadar(view.Radar))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Evolution") + "\n")
	b.WriteString(renderTree(view.Tree))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Capture rate") + "\n")
	b.WriteString(renderCapture(view.Capture))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Gender") + "\n")
	b.WriteString(view.Gender.Label + "\n\n")

	b.WriteString(headingStyle.Render(view.Histogram.Title) + "\n")
	b.WriteString(renderHistogram(view.Histogram, width))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Primary types") + "\n")
	for _, t := range view.Types {
		fmt.Fprintf(&b, "%-10s %d\n", t.Type, t.Count)
	}

	return b.String()
}

func renderRadar(r render.Radar) string {
	var b strings.Builder
	for i, label := range r.Labels {
		fmt.Fprintf(&b, "%-12s %3d %s\n", label, r.Values[i], bar(r.Values[i], r.Range, barWidth))
	}
	return b.String()
}

func renderTree(view render.TreeView) string {
	if view.Message != "" {
		return mutedStyle.Render(view.Message) + "\n"
	}

	var b strings.Builder
	for _, row := range view.Rows {
		names := make([]string, 0, len(row.Nodes))
		for _, n := range row.Nodes {
			if n.Current {
				names = append(names, currentStyle.Render("["+n.Name+"]"))
			} else {
				names = append(names, n.Name)
			}
		}
		fmt.Fprintf(&b, "Stage %d: %s\n", row.Stage, strings.Join(names, "  "))
		if row.Connector {
			b.WriteString("   ↓\n")
		}
	}
	return b.String()
}

func renderCapture(view render.CaptureView) string {
	if !view.Available {
		return mutedStyle.Render(view.Message) + "\n"
	}
	style := lipgloss.NewStyle().Foreground(bandColors[view.Band])
	return fmt.Sprintf("%3d/%d %s %s\n", view.Rate, view.Max,
		style.Render(bar(view.Rate, view.Max, barWidth)),
		style.Render(string(view.Band)))
}

func renderHistogram(view render.HistogramView, width int) string {
	top := 0
	for _, bin := range view.Bins {
		top = max(top, bin.Count)
	}
	cols := max(min(width-16, barWidth), 5)

	var b strings.Builder
	for _, bin := range view.Bins {
		fmt.Fprintf(&b, "%5.0f-%-5.0f %s %d\n", bin.Lower, bin.Upper, bar(bin.Count, top, cols), bin.Count)
	}
	return b.String()
}

func renderComparison(view render.ComparisonView) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s vs %s", view.A.Name, view.B.Name)) + "\n")
	b.WriteString(view.SizeRatio + "\n\n")

	b.WriteString(headingStyle.Render("Size") + "\n")
	fmt.Fprintf(&b, "%-12s %s\n", view.A.Name, bar(int(view.A.SizePx), 200, barWidth))
	fmt.Fprintf(&b, "%-12s %s\n\n", view.B.Name, bar(int(view.B.SizePx), 200, barWidth))

	b.WriteString(headingStyle.Render("Stats") + "\n")
	axis := int(view.AxisMax)
	for _, s := range view.Bars {
		fmt.Fprintf(&b, "%-12s %3d %s\n", s.Label, s.A, currentStyle.Render(bar(s.A, axis, barWidth)))
		fmt.Fprintf(&b, "%-12s %3d %s\n", "", s.B, bar(s.B, axis, barWidth))
	}

	return b.String()
}

// bar draws value as a bar of at most width cells, scaled to limit
func bar(value, limit, width int) string {
	if limit <= 0 || value <= 0 {
		return ""
	}
	n := min(value*width/limit, width)
	return strings.Repeat("█", n)
}
