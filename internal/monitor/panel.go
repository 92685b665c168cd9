package monitor

import (
	"fmt"
	"strings"

	"github.com/iryanin/redfish-monitor/internal/redfish"
)

// metricRow pairs a display label with a metric value and unit.
type metricRow struct {
	label  string
	metric redfish.Metric
	unit   string
}

// metricRows returns the fixed display order for a reading. Every row is
// always present so panels keep a stable height across refreshes.
func metricRows(r redfish.Reading) []metricRow {
	return []metricRow{
		{"PSU Input", r.PSUInput, "W"},
		{"CPU Total", r.CPUTotal, "W"},
		{"CPU0 Power", r.CPU0Power, "W"},
		{"CPU1 Power", r.CPU1Power, "W"},
		{"CPU0 Temp", r.CPU0Temp, "°C"},
		{"CPU1 Temp", r.CPU1Temp, "°C"},
		{"Fan Power", r.FanPower, "W"},
	}
}

// renderPanel builds one controller's bordered panel for the list view.
func (m Model) renderPanel(addr string, selected bool) string {
	status := m.ControllerStatus(addr)

	title := fmt.Sprintf("%s %s", StatusGlyph(status), ControllerNameStyle.Render(addr))

	var body string
	if reading, ok := m.snapshot[addr]; ok {
		body = renderMetrics(reading)
	} else {
		// Exactly this literal, nothing else. Failure reasons belong to
		// the detail view.
		body = NoDataStyle.Render(NoDataMessage)
	}

	style := PanelStyle
	if selected {
		style = PanelSelectedStyle
	}

	width := m.width - 2
	if width > 0 {
		style = style.Width(width)
	}

	return style.Render(title + "\n" + body)
}

// renderMetrics lays out the fixed metric rows for a reading. Absent metrics
// render as 0 so the layout never shifts.
func renderMetrics(r redfish.Reading) string {
	rows := metricRows(r)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			LabelStyle.Render(fmt.Sprintf("%-11s", row.label)),
			ValueStyle.Render(fmt.Sprintf("%6d", row.metric.Display())),
			UnitStyle.Render(row.unit),
		))
	}
	return strings.Join(lines, "\n")
}

// renderDetailContent builds the expanded view body for one controller,
// including per-metric presence so a degraded field is visible as such.
func (m Model) renderDetailContent(addr string) string {
	status := m.ControllerStatus(addr)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", StatusGlyph(status), ControllerNameStyle.Render(addr)))
	b.WriteString(LabelStyle.Render("Status: ") + status.String() + "\n\n")

	reading, ok := m.snapshot[addr]
	if !ok {
		b.WriteString(NoDataStyle.Render(NoDataMessage))
		if reason := m.store.FailureReason(addr); reason != "" {
			b.WriteString("\n\n" + LabelStyle.Render("Last error:") + "\n")
			b.WriteString(NoDataStyle.Render(reason))
		}
		return b.String()
	}

	for _, row := range metricRows(reading) {
		value := ValueStyle.Render(fmt.Sprintf("%6d", row.metric.Display()))
		note := ""
		if !row.metric.Valid {
			note = NoDataStyle.Render("  (not reported)")
		}
		b.WriteString(fmt.Sprintf("%s %s %s%s\n",
			LabelStyle.Render(fmt.Sprintf("%-11s", row.label)),
			value,
			UnitStyle.Render(row.unit),
			note,
		))
	}

	return b.String()
}

// updateDetailViewportContent refreshes the detail viewport with the
// selected controller's expanded view.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent(m.SelectedController()))
}
