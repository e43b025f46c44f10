package tui

import (
	"fmt"
	"strings"
	"time"

	"go-td-sim/internal/app"
	"go-td-sim/pkg/geom"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultCols  = 80
	defaultRows  = 30
	footerHeight = 3
	minCols      = 20
	minRows      = 8
)

// tickMsg — очередной кадр симуляции.
type tickMsg time.Time

var (
	styleEmpty      = lipgloss.NewStyle()
	stylePath       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
	styleTower      = lipgloss.NewStyle().Foreground(lipgloss.Color("#3232c8")).Bold(true)
	styleEnemy      = lipgloss.NewStyle().Foreground(lipgloss.Color("#c83232")).Bold(true)
	styleProjectile = lipgloss.NewStyle().Foreground(lipgloss.Color("#32c832"))
	styleCursor     = lipgloss.NewStyle().Reverse(true)
	styleStatus     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5f5f5")).Background(lipgloss.Color("#3c3c50")).Padding(0, 1)
	stylePaused     = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc3c3c")).Bold(true)
)

var glyphs = map[cell]struct {
	r     rune
	style lipgloss.Style
}{
	cellEmpty:      {' ', styleEmpty},
	cellPath:       {'.', stylePath},
	cellTower:      {'#', styleTower},
	cellEnemy:      {'o', styleEnemy},
	cellProjectile: {'*', styleProjectile},
}

// Model — bubbletea-модель терминального режима. Мир рисуется на сетке
// символов, курсор выбирает клетку для установки и сноса башен.
type Model struct {
	driver   *app.Driver
	path     []geom.Point
	worldW   float64
	worldH   float64
	interval time.Duration

	cols, rows int
	cursorCol  int
	cursorRow  int
	lastTick   time.Time

	keys keyMap
	help help.Model
}

// New создаёт модель. interval — период кадров, worldW×worldH — размер мира.
func New(driver *app.Driver, worldW, worldH float64, interval time.Duration) Model {
	return Model{
		driver:    driver,
		path:      driver.Game.Path.Points,
		worldW:    worldW,
		worldH:    worldH,
		interval:  interval,
		cols:      defaultCols,
		rows:      defaultRows,
		cursorCol: defaultCols / 2,
		cursorRow: defaultRows / 2,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, minCols)
		m.rows = max(msg.Height-footerHeight, minRows)
		m.help.Width = msg.Width
		m.clampCursor()
	case tickMsg:
		now := time.Time(msg)
		dt := m.interval
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick)
		}
		m.lastTick = now
		m.driver.Frame(dt)
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursorRow--
	case key.Matches(msg, m.keys.Down):
		m.cursorRow++
	case key.Matches(msg, m.keys.Left):
		m.cursorCol--
	case key.Matches(msg, m.keys.Right):
		m.cursorCol++
	case key.Matches(msg, m.keys.Place):
		p := m.cursorWorld()
		m.driver.Game.Enqueue(app.PlaceTowerAt{X: p.X, Y: p.Y})
	case key.Matches(msg, m.keys.Remove):
		p := m.cursorWorld()
		m.driver.Game.Enqueue(app.RemoveTowerAt{X: p.X, Y: p.Y})
	case key.Matches(msg, m.keys.Pause):
		m.driver.TogglePause()
	case key.Matches(msg, m.keys.Speed):
		m.driver.CycleSpeed()
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) clampCursor() {
	m.cursorCol = min(max(m.cursorCol, 0), m.cols-1)
	m.cursorRow = min(max(m.cursorRow, 0), m.rows-1)
}

func (m Model) newGrid() *grid {
	return newGrid(m.cols, m.rows, m.worldW, m.worldH)
}

// cursorWorld — точка мира под курсором (центр клетки).
func (m Model) cursorWorld() geom.Point {
	return m.newGrid().center(m.cursorCol, m.cursorRow)
}

// Cursor возвращает позицию курсора в клетках.
func (m Model) Cursor() (col, row int) {
	return m.cursorCol, m.cursorRow
}

func (m Model) View() string {
	g := m.newGrid()
	g.drawPath(m.path)
	g.drawSprites(m.driver.Game.Snapshot())

	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			glyph := glyphs[g.at(col, row)]
			style := glyph.style
			r := glyph.r
			if col == m.cursorCol && row == m.cursorRow {
				style = styleCursor
				if r == ' ' {
					r = '+'
				}
			}
			b.WriteString(style.Render(string(r)))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m Model) statusLine() string {
	world := m.driver.Game
	enemies, towers, projectiles := world.ECS.Counts()
	s := world.Stats
	status := styleStatus.Render(fmt.Sprintf("t=%.1fs x%d | enemies %d towers %d projectiles %d | killed %d reached end %d",
		m.driver.Now().Seconds(), m.driver.Speed(), enemies, towers, projectiles, s.Killed, s.ReachedEnd))
	if m.driver.Paused() {
		status += " " + stylePaused.Render("PAUSED")
	}
	return status
}
