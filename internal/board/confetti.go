package board

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Celebration timing.
const (
	confettiDuration = 3 * time.Second
	confettiInterval = 250 * time.Millisecond
	confettiFrames   = int(confettiDuration / confettiInterval)

	// confettiPeak is the particle count of each burst on the first frame.
	confettiPeak = 25
	// confettiRows is the height of the celebration strip.
	confettiRows = 3
)

var (
	confettiGlyphs = []rune{'*', '•', '✦', '+', '°', '✧'}
	confettiColors = []lipgloss.Color{"1", "2", "3", "4", "5", "6", "#00b050"}
)

// confettiTickMsg advances the celebration by one frame. id ties a tick to the
// celebration that scheduled it so a restarted one ignores stale ticks.
type confettiTickMsg struct {
	id int
}

type particle struct {
	x, y  int
	glyph rune
	color lipgloss.Color
}

// confetti is a short burst animation: particle count decays linearly with
// the time left, half launched from the left third of the strip and half from
// the right third.
type confetti struct {
	id        int
	frame     int
	day       int
	active    bool
	particles []particle
	rng       *rand.Rand
}

func newConfetti(seed int64) confetti {
	return confetti{rng: rand.New(rand.NewSource(seed))}
}

// start (re)starts the animation for day and returns the first tick.
func (c *confetti) start(day, width int) tea.Cmd {
	c.id++
	c.frame = 0
	c.day = day
	c.active = true
	c.scatter(width)
	return c.tick()
}

// advance handles a tick. It returns the next tick while frames remain.
func (c *confetti) advance(msg confettiTickMsg, width int) tea.Cmd {
	if !c.active || msg.id != c.id {
		return nil
	}
	c.frame++
	if c.frame >= confettiFrames {
		c.active = false
		c.particles = nil
		return nil
	}
	c.scatter(width)
	return c.tick()
}

func (c *confetti) tick() tea.Cmd {
	id := c.id
	return tea.Tick(confettiInterval, func(time.Time) tea.Msg {
		return confettiTickMsg{id: id}
	})
}

// count is the number of particles per burst on the current frame.
func (c *confetti) count() int {
	left := confettiFrames - c.frame
	if left < 0 {
		left = 0
	}
	return confettiPeak * left / confettiFrames
}

func (c *confetti) scatter(width int) {
	if width < 3 {
		width = 3
	}
	third := width / 3
	n := c.count()

	c.particles = c.particles[:0]
	for burst := 0; burst < 2; burst++ {
		origin := 0
		if burst == 1 {
			origin = width - third
		}
		for i := 0; i < n; i++ {
			c.particles = append(c.particles, particle{
				x:     origin + c.rng.Intn(third),
				y:     c.rng.Intn(confettiRows),
				glyph: confettiGlyphs[c.rng.Intn(len(confettiGlyphs))],
				color: confettiColors[c.rng.Intn(len(confettiColors))],
			})
		}
	}
}

// render draws the particles into a width × confettiRows strip.
func (c *confetti) render(width int) string {
	if !c.active || width <= 0 {
		return ""
	}

	cells := make([][]string, confettiRows)
	for y := range cells {
		cells[y] = make([]string, width)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}
	for _, p := range c.particles {
		if p.x < 0 || p.x >= width || p.y < 0 || p.y >= confettiRows {
			continue
		}
		cells[p.y][p.x] = lipgloss.NewStyle().Foreground(p.color).Render(string(p.glyph))
	}

	lines := make([]string, confettiRows)
	for y, row := range cells {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
