package monitor

import tea "github.com/charmbracelet/bubbletea"

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyExpand      = "enter"
	KeyCollapse    = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state and
// command. Returns true if the key was handled; unrecognized keys fall
// through and the loop continues.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Detail view: Esc returns to the panel list; quit still works.
	// Everything else falls through to the viewport so up/down/j/k scroll
	// instead of moving the hidden list selection.
	if m.viewMode == ViewDetail {
		switch key {
		case KeyCollapse:
			m.viewMode = ViewList
			return true, nil
		case KeyQuit, KeyQuitAlt:
			m.quitting = true
			return true, tea.Quit
		}
		return false, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.addrs)-1 {
			m.selected++
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		return true, nil

	case KeySelectLast:
		if len(m.addrs) > 0 {
			m.selected = len(m.addrs) - 1
		}
		return true, nil

	case KeyExpand:
		if len(m.addrs) > 0 {
			m.viewMode = ViewDetail
			m.updateDetailViewportContent()
		}
		return true, nil
	}

	return false, nil
}
