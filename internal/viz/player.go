package viz

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trajview/internal/config"
	"github.com/san-kum/trajview/internal/traj"
)

const (
	canvasWidth   = 64
	canvasHeight  = 28
	orbitSegments = 400
)

// Playback errors. Any of these during a frame update ends the session.
var (
	// ErrFrameOutOfRange indicates a frame number outside the index table.
	ErrFrameOutOfRange = errors.New("viz: frame outside index table")

	// ErrDrawState indicates an index table entry pointing past the sample
	// table, which can only happen if the table was mutated after setup.
	ErrDrawState = errors.New("viz: frame table inconsistent with sample table")
)

// PlayState is the session state: Idle before playback starts and after the
// final frame, Playing while the frame index advances.
type PlayState int

const (
	StateIdle PlayState = iota
	StatePlaying
)

type TickMsg time.Time

// Frame is the resolved visual state for one playback frame: the complete
// trace prefix, the marker sample, and the telemetry values derived from it.
type Frame struct {
	Number int // position in the frame index table
	Index  int // resolved sample index

	TraceX, TraceY   []float64 // full prefix [0..Index], never thinned
	MarkerX, MarkerY float64

	Day, Year, RadiusAU float64
	Telemetry           string
}

// Player owns one playback session: the immutable sample and frame index
// tables, the canvas, and the timer-driven frame advance. It implements
// tea.Model.
type Player struct {
	traj   *traj.Trajectory
	cfg    config.Config
	frames []int
	canvas *Canvas
	theme  Theme
	title  string
	half   float64 // world half-width in km

	state    PlayState
	started  bool
	paused   bool
	frame    int
	cur      Frame
	err      error
	showHelp bool
}

// NewPlayer builds a session for the given trajectory. The sample table is
// validated and the frame index table built here; nothing is drawn yet.
func NewPlayer(tr *traj.Trajectory, cfg *config.Config) *Player {
	c := *cfg
	c.Normalize()

	title := c.Title
	if title == "" && c.CSVPath != "" {
		title = filepath.Base(c.CSVPath)
	}
	if title == "" {
		title = "trajectory"
	}

	half := tr.Bounds(c.PadFraction)
	if half <= 0 {
		half = 1 // degenerate table with every sample at the origin
	}

	return &Player{
		traj:   tr,
		cfg:    c,
		frames: traj.FrameIndices(tr.Len(), c.ThinStep),
		canvas: NewCanvas(canvasWidth, canvasHeight),
		theme:  GetTheme(c.Theme),
		title:  title,
		half:   half,
	}
}

// FrameCount returns the number of playback frames after thinning.
func (p *Player) FrameCount() int {
	return len(p.frames)
}

// Err returns the error that ended the session, if any.
func (p *Player) Err() error {
	return p.err
}

// Advance resolves a frame number to its visual state. It does not mutate
// the player; the caller decides what to do with the result.
func (p *Player) Advance(frame int) (Frame, error) {
	if frame < 0 || frame >= len(p.frames) {
		return Frame{}, fmt.Errorf("%w: frame %d of %d", ErrFrameOutOfRange, frame, len(p.frames))
	}
	idx := p.frames[frame]
	if idx >= p.traj.Len() {
		return Frame{}, fmt.Errorf("%w: index %d, %d samples", ErrDrawState, idx, p.traj.Len())
	}

	f := Frame{
		Number:   frame,
		Index:    idx,
		TraceX:   p.traj.X[:idx+1],
		TraceY:   p.traj.Y[:idx+1],
		MarkerX:  p.traj.X[idx],
		MarkerY:  p.traj.Y[idx],
		Day:      p.traj.ElapsedDays(idx),
		Year:     p.traj.ElapsedYears(idx),
		RadiusAU: p.traj.RadiusAU(idx),
	}
	f.Telemetry = fmt.Sprintf("Day:  %7.0f\nYear: %7.2f\nr:    %7.3f AU", f.Day, f.Year, f.RadiusAU)
	return f, nil
}

func (p *Player) tick() tea.Cmd {
	return tea.Tick(time.Duration(p.cfg.IntervalMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (p *Player) Init() tea.Cmd {
	return p.tick()
}

// Update handles key input and the frame timer.
func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.paused = !p.paused
		case "r":
			p.frame = 0
			p.paused = false
			restart := p.state == StateIdle && p.started
			p.state = StatePlaying
			if restart {
				return p, p.tick()
			}
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == p.theme.Name {
					p.theme = GetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "[":
			p.scrub(-1)
		case "]":
			p.scrub(1)
		case "?":
			p.showHelp = !p.showHelp
		}
	case TickMsg:
		if !p.started {
			p.started = true
			p.state = StatePlaying
		}
		if p.state == StatePlaying && !p.paused {
			f, err := p.Advance(p.frame)
			if err != nil {
				p.err = err
				return p, tea.Quit
			}
			p.cur = f
			p.draw(f)
			if p.frame >= len(p.frames)-1 {
				if p.cfg.Repeat {
					p.frame = 0
				} else {
					p.state = StateIdle
					return p, nil // terminal, stop ticking
				}
			} else {
				p.frame++
			}
		}
		return p, p.tick()
	}
	return p, nil
}

// scrub pauses playback and steps one frame backward or forward.
func (p *Player) scrub(dir int) {
	p.paused = true
	n := p.cur.Number + dir
	if n < 0 {
		n = 0
	}
	if n >= len(p.frames) {
		n = len(p.frames) - 1
	}
	f, err := p.Advance(n)
	if err != nil {
		p.err = err
		return
	}
	p.frame = n
	p.cur = f
	p.draw(f)
}

// scale returns sub-pixels per km, equal for both axes so the square world
// bounds keep a 1:1 aspect ratio on the canvas.
func (p *Player) scale() float64 {
	cw, ch := p.canvas.Width*2, p.canvas.Height*4
	m := cw
	if ch < m {
		m = ch
	}
	return (float64(m)/2 - 1) / p.half
}

func (p *Player) center() (int, int) {
	return p.canvas.Width, p.canvas.Height * 2
}

// project maps world km to sub-pixel coordinates, y up.
func (p *Player) project(x, y float64) (int, int) {
	cx, cy := p.center()
	s := p.scale()
	return cx + int(x*s), cy - int(y*s)
}

// draw repaints the canvas for one frame: static artifacts first (Sun,
// reference orbits), then the trace prefix and marker.
func (p *Player) draw(f Frame) {
	p.canvas.Clear()

	cx, cy := p.center()
	p.canvas.Blot(cx, cy) // Sun

	if p.cfg.ShowOrbits {
		for _, rAU := range p.cfg.OrbitRadiiAU {
			p.canvas.DrawCircle(cx, cy, rAU*traj.AU*p.scale(), orbitSegments)
		}
	}

	px, py := p.project(f.TraceX[0], f.TraceY[0])
	p.canvas.Set(px, py)
	for i := 1; i < len(f.TraceX); i++ {
		qx, qy := p.project(f.TraceX[i], f.TraceY[i])
		if qx != px || qy != py {
			p.canvas.DrawLine(px, py, qx, qy)
			px, py = qx, qy
		}
	}

	mx, my := p.project(f.MarkerX, f.MarkerY)
	p.canvas.Blot(mx, my)
}

// View renders the canvas beside a telemetry panel.
func (p *Player) View() string {
	if p.err != nil {
		return fmt.Sprintf("playback error: %v\n", p.err)
	}

	canvasStyle := lipgloss.NewStyle().Foreground(p.theme.Canvas).Padding(1, 2)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.theme.Muted).
		Padding(1, 2).Width(34)
	headerStyle := lipgloss.NewStyle().Foreground(p.theme.Accent).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(p.theme.Label)
	valueStyle := lipgloss.NewStyle().Foreground(p.theme.Text)
	helpStyle := lipgloss.NewStyle().Foreground(p.theme.Muted).MarginTop(2)

	status := "PLAYING"
	switch {
	case p.paused:
		status = "PAUSED"
	case p.state == StateIdle && p.started:
		status = "DONE"
	case p.state == StateIdle:
		status = "READY"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(p.title) + "\n")
	s.WriteString(labelStyle.Render(status) + "\n\n")

	if p.started {
		for _, line := range strings.Split(p.cur.Telemetry, "\n") {
			s.WriteString(valueStyle.Render(line) + "\n")
		}
		s.WriteString("\n")
		s.WriteString(labelStyle.Render(fmt.Sprintf("frame  %d/%d", p.cur.Number+1, len(p.frames))) + "\n")
		s.WriteString(labelStyle.Render(fmt.Sprintf("sample %d/%d", p.cur.Index+1, p.traj.Len())) + "\n")
		s.WriteString(progressBar(p.cur.Number, len(p.frames)-1, 24) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Restart Q:Quit\nT:Theme [ ]:Scrub ?:Help"))

	if p.showHelp {
		s.WriteString(helpStyle.Render("\n\nSpace  pause/resume\nR      restart playback\n[ ]    step frame while paused\nT      cycle themes\nQ      quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(p.canvas.String()),
		panelStyle.Render(s.String()))
}

func progressBar(cur, last, width int) string {
	if last < 1 {
		last = 1
	}
	filled := cur * width / last
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// Snapshot draws the given frame offscreen and returns the canvas. Used by
// exporters that build every frame without presenting a surface.
func (p *Player) Snapshot(frame int) (*Canvas, error) {
	f, err := p.Advance(frame)
	if err != nil {
		return nil, err
	}
	p.draw(f)
	return p.canvas, nil
}

// Run plays the session interactively until the table is exhausted (or
// forever with repeat) or the user quits.
func (p *Player) Run() error {
	m, err := tea.NewProgram(p).Run()
	if err != nil {
		return err
	}
	if fp, ok := m.(*Player); ok && fp.err != nil {
		return fp.err
	}
	return nil
}
