package render

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arloliu/vizu/errs"
)

// playTickMsg advances the playback to the next frame.
type playTickMsg time.Time

// Playback is a Bubble Tea model that loops a rendered frame sequence in
// the terminal, advancing one frame per tick.
type Playback struct {
	frames   []string
	interval time.Duration
	idx      int
	paused   bool
}

// NewPlayback creates a playback model over the given frames.
func NewPlayback(frames []string, interval time.Duration) Playback {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}

	return Playback{frames: frames, interval: interval}
}

func (m Playback) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

// Init implements the tea.Model interface.
func (m Playback) Init() tea.Cmd {
	return m.tick()
}

// Update implements the tea.Model interface.
func (m Playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
		return m, nil

	case playTickMsg:
		if !m.paused && len(m.frames) > 0 {
			m.idx = (m.idx + 1) % len(m.frames)
		}
		return m, m.tick()
	}

	return m, nil
}

// View implements the tea.Model interface.
func (m Playback) View() string {
	if len(m.frames) == 0 {
		return "no frames\n"
	}

	return m.frames[m.idx] + "\nspace to pause, q to quit\n"
}

// Play loops the frame sequence in the terminal until the user quits.
func Play(frames []string, interval time.Duration) error {
	if len(frames) == 0 {
		return errs.ErrEmptyTable
	}

	p := tea.NewProgram(NewPlayback(frames, interval))
	_, err := p.Run()

	return err
}
