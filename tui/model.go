// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ampviz/ampviz"
	"github.com/ampviz/ampviz/render"
	"github.com/ampviz/ampviz/utils"
	"github.com/ampviz/ampviz/wave"
)

// Block characters for amplitude columns (8 levels, bottom to top).
// Index 0 is empty, 1-8 are increasing fill levels.
const blockChars = " ▁▂▃▄▅▆▇█"

var blockRunes = []rune(blockChars)

const (
	defaultHeight   = 3
	defaultInterval = 50 * time.Millisecond
)

// TickMsg triggers a redraw and, when a position source is configured,
// one progress update.
type TickMsg struct{}

// Options configures the component.
type Options struct {
	// Height is the number of character rows, 3 when unset.
	Height int

	// Interval is the tick cadence, 50ms when unset.
	Interval time.Duration

	// Position, when set, is polled on every tick and drives the
	// progress boundary.
	Position ampviz.PositionFunc

	// OnSeek receives the [0, 1] fraction of a click or a finished
	// drag on the waveform.
	OnSeek func(pos float64)

	// PlayedColor and UnplayedColor style the columns on either side
	// of the progress boundary.
	PlayedColor   string
	UnplayedColor string
}

// Model is a Bubble Tea component displaying one waveform container as
// block-character columns.
type Model struct {
	wf     *ampviz.Waveform
	height int

	interval time.Duration
	position ampviz.PositionFunc

	played   lipgloss.Style
	unplayed lipgloss.Style
}

// New builds the component around a fresh container for src. The
// container uses one-cell bars with no gap, so segments map directly to
// terminal columns, and applies width reports synchronously since the
// event loop already serializes them.
func New(src *wave.Sequence, opts Options) (Model, error) {
	if opts.Height < 1 {
		opts.Height = defaultHeight
	}

	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}

	if opts.PlayedColor == "" {
		opts.PlayedColor = ampviz.DefaultPlayedColor
	}

	if opts.UnplayedColor == "" {
		opts.UnplayedColor = ampviz.DefaultUnplayedColor
	}

	copts := ampviz.DefaultOptions()
	copts.Kind = ampviz.KindBars
	copts.Bar = render.BarOptions{Width: 1, Gap: 0}
	copts.Debounce = -1
	copts.DisableLazy = true
	copts.OnClick = opts.OnSeek
	copts.OnDragEnd = opts.OnSeek

	wf, err := ampviz.New(src, copts)
	if err != nil {
		return Model{}, err
	}

	if opts.Position != nil {
		wf.EnableProgress(ampviz.ProgressOptions{
			Played:   opts.PlayedColor,
			Unplayed: opts.UnplayedColor,
		})
	}

	return Model{
		wf:       wf,
		height:   opts.Height,
		interval: opts.Interval,
		position: opts.Position,
		played:   lipgloss.NewStyle().Foreground(lipgloss.Color(opts.PlayedColor)),
		unplayed: lipgloss.NewStyle().Foreground(lipgloss.Color(opts.UnplayedColor)),
	}, nil
}

// Waveform exposes the underlying container, for acquiring its Handle
// or feeding it new data.
func (m Model) Waveform() *ampviz.Waveform {
	return m.wf
}

// Close releases the container.
func (m Model) Close() error {
	return m.wf.Close()
}

// Init returns the initial tick command.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update translates the message stream into container reports.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.applyPosition()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.wf.SetWidth(float64(msg.Width))

	case tea.MouseMsg:
		m.applyMouse(msg)
	}

	return m, nil
}

// View renders the waveform as rows of block characters, splitting the
// columns into played and unplayed styles at the progress boundary.
func (m Model) View() string {
	reduced := m.wf.Reduced()
	if len(reduced) == 0 {
		return ""
	}

	boundary := m.boundaryColumn(len(reduced))

	var b strings.Builder

	line := make([]rune, len(reduced))

	for row := range m.height {
		if row > 0 {
			b.WriteString("\n")
		}

		for col, v := range reduced {
			line[col] = m.columnRune(v, row)
		}

		b.WriteString(m.played.Render(string(line[:boundary])))
		b.WriteString(m.unplayed.Render(string(line[boundary:])))
	}

	return b.String()
}

// tick schedules the next redraw.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// applyPosition pushes the polled playback position through the
// imperative handle; before the first render pass there is nothing to
// update yet.
func (m Model) applyPosition() {
	if m.position == nil {
		return
	}

	h, err := m.wf.Handle()
	if err != nil {
		return
	}

	p, _ := m.position()
	_ = h.SetProgress(p)
}

func (m Model) applyMouse(msg tea.MouseMsg) {
	x := float64(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.wf.PointerDown(x)
		}
	case tea.MouseActionMotion:
		m.wf.PointerMove(x)
	case tea.MouseActionRelease:
		m.wf.PointerUp(x)
	}
}

// boundaryColumn returns how many leading columns count as played.
func (m Model) boundaryColumn(cols int) int {
	o := m.wf.Overlay()
	if o == nil {
		return cols
	}

	return int(o.Progress() * float64(cols))
}

// columnRune picks the block character for one column at one row. Rows
// count from the top; a column's level spans height*8 sublevels from
// the bottom up. Silent columns keep a baseline sliver on the bottom
// row so the strip never disappears.
func (m Model) columnRune(v float64, row int) rune {
	level := utils.Quantize(v, m.height*8)

	if level == 0 {
		if row == m.height-1 {
			return blockRunes[1]
		}

		return blockRunes[0]
	}

	rowFromBottom := m.height - 1 - row
	fill := level - rowFromBottom*8

	if fill <= 0 {
		return blockRunes[0]
	}

	if fill >= 8 {
		return blockRunes[8]
	}

	return blockRunes[fill]
}
