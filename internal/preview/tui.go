package preview

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicekb/niceview/event"
	"github.com/nicekb/niceview/internal/lcdsim"
	"github.com/nicekb/niceview/sharpmem/image1bit"
)

// Publisher accepts events. *event.Bus is a Publisher.
type Publisher interface {
	Publish(ev event.Event) error
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Foreground(lipgloss.Color("#27272a")).
			Background(lipgloss.Color("#e4e4e7"))

	lastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

// FrameMsg tells the model the panel memory changed.
type FrameMsg struct{}

// Model is the bubbletea model of the terminal preview.
type Model struct {
	lcd   *lcdsim.LCD
	pub   Publisher
	keys  *Keys
	frame *image1bit.HorizontalMSB
	last  string
	err   error
}

// NewModel returns a model showing lcd and publishing key events to pub.
func NewModel(lcd *lcdsim.LCD, pub Publisher) Model {
	return Model{
		lcd:   lcd,
		pub:   pub,
		keys:  NewKeys(),
		frame: lcd.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.frame = m.lcd.Snapshot()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		ev, ok := m.keys.Event(msg.String())
		if !ok {
			return m, nil
		}
		if err := m.pub.Publish(ev); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.last = fmt.Sprintf("%T %v", ev, ev)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	parts := []string{
		panelStyle.Render(Braille(Upright(m.frame))),
		lastStyle.Render("last: " + m.last),
		helpStyle.Render(KeyHelp),
	}
	if m.err != nil {
		parts = append(parts, errStyle.Render(m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Err returns the publish error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// RunTUI shows lcd in the terminal until the user quits. Frames are
// refreshed on every transfer the panel accepts.
func RunTUI(lcd *lcdsim.LCD, pub Publisher) error {
	p := tea.NewProgram(NewModel(lcd, pub), tea.WithAltScreen())
	lcd.OnUpdate(func() { p.Send(FrameMsg{}) })
	defer lcd.OnUpdate(nil)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

// braille dot bits for a 2x4 cell, indexed [row][col].
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille renders img with one braille character per 2x4 pixels. Dark
// pixels are raised dots.
func Braille(img *image.Gray) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 4 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x += 2 {
			r := rune(0x2800)
			for dy := range 4 {
				for dx := range 2 {
					p := image.Pt(x+dx, y+dy)
					if p.In(b) && img.GrayAt(p.X, p.Y).Y < 0x80 {
						r |= brailleDots[dy][dx]
					}
				}
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
