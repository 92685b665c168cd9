package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iryanin/redfish-monitor/internal/redfish"
)

// Status represents the poll state of a controller.
type Status int

const (
	// StatusConnecting means no poll cycle has completed yet.
	StatusConnecting Status = iota
	// StatusOnline means the controller answered the most recent cycle.
	StatusOnline
	// StatusUnreachable means the most recent cycle has no entry for it.
	StatusUnreachable
)

// String returns a human-readable status string.
func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusOnline:
		return "online"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// NoDataMessage is rendered for a controller with no snapshot entry.
const NoDataMessage = "no data available"

// Model is the Bubble Tea model for the sensor dashboard. It shares no state
// with the poller beyond the Store: every tick it takes a read view of the
// current snapshot and redraws.
type Model struct {
	addrs    []string // fixed panel order from config
	store    *Store
	tick     time.Duration
	selected int
	viewMode ViewMode

	// Read view captured on the last tick
	snapshot   redfish.Snapshot
	lastUpdate time.Time

	width    int
	height   int
	quitting bool

	detailViewport viewport.Model
	viewportReady  bool
}

// tickMsg signals a periodic redraw.
type tickMsg time.Time

// NewModel creates a dashboard model over the given controller order.
func NewModel(store *Store, addrs []string, tick time.Duration) Model {
	if tick <= 0 {
		tick = time.Second
	}
	return Model{
		addrs:    addrs,
		store:    store,
		tick:     tick,
		snapshot: redfish.Snapshot{},
	}
}

// Init captures an initial read view and starts the tick timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Reserve space for header and footer
		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		m.snapshot = m.store.Current()
		m.lastUpdate = m.store.LastUpdate()
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		return m, m.tickCmd()
	}

	if m.viewMode == ViewDetail && m.viewportReady {
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.viewMode == ViewDetail {
		return m.renderDetail()
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the render interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ControllerStatus derives a controller's status from the current read view.
func (m Model) ControllerStatus(addr string) Status {
	if m.lastUpdate.IsZero() {
		return StatusConnecting
	}
	if _, ok := m.snapshot[addr]; ok {
		return StatusOnline
	}
	return StatusUnreachable
}

// ReachableCount returns how many controllers answered the last cycle.
func (m Model) ReachableCount() int {
	count := 0
	for _, addr := range m.addrs {
		if _, ok := m.snapshot[addr]; ok {
			count++
		}
	}
	return count
}

// SelectedController returns the address of the currently selected panel.
func (m Model) SelectedController() string {
	if m.selected >= 0 && m.selected < len(m.addrs) {
		return m.addrs[m.selected]
	}
	return ""
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// completed poll cycle, or -1 before the first cycle.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return -1
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
