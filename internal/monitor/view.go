package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard draws the list view: header, one panel per controller in
// fixed config order, and a footer with key hints.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if len(m.addrs) == 0 {
		b.WriteString(NoDataStyle.Render("no controllers configured"))
		b.WriteString("\n")
	}

	for i, addr := range m.addrs {
		b.WriteString(m.renderPanel(addr, i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderDetail draws the expanded single-controller view inside a viewport.
func (m Model) renderDetail() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.renderDetailContent(m.SelectedController()))
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("↑/↓ scroll · esc back · q quit"))

	return b.String()
}

func (m Model) renderHeader() string {
	summary := fmt.Sprintf("%d controllers · %d reachable", len(m.addrs), m.ReachableCount())

	var age string
	if secs := m.SecondsSinceUpdate(); secs < 0 {
		age = "waiting for first poll"
	} else if secs == 0 {
		age = "updated just now"
	} else {
		age = fmt.Sprintf("updated %ds ago", secs)
	}

	title := HeaderStyle.Render("Redfish Monitor")
	info := LabelStyle.Render(summary + " · " + age)

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", info)
}

func (m Model) renderFooter() string {
	return FooterStyle.Render("↑/↓ select · enter expand · q quit")
}
