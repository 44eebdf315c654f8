package tileview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contourtiles/internal/clip"
	"contourtiles/internal/feature"
	"contourtiles/internal/fetchtile"
	"contourtiles/internal/tileserver"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
)

const previewExtent = 4096

// Kind selects which traced layer a Model previews.
type Kind string

const (
	KindContour   Kind = "contour"
	KindHillshade Kind = "hillshade"
	KindTerrain   Kind = "terrain"
)

// Model previews one tile's traced geometry for a given z/x/y/kind by
// running it through the live fetch/trace/clip pipeline and rendering
// the result with the braille micro-grid renderer.
type Model struct {
	source   *fetchtile.Source
	tileSize int
	bufferPx int

	z, x, y int
	kind    Kind

	width, height int
	status        string
	rendered      string
	loading       bool
	spin          spinner.Model
}

// New returns a Model ready to preview z/x/y against source.
func New(source *fetchtile.Source, tileSize, bufferPx, z, x, y int, kind Kind) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		source:   source,
		tileSize: tileSize,
		bufferPx: bufferPx,
		z:        z,
		x:        x,
		y:        y,
		kind:     kind,
		status:   "loading",
		loading:  true,
		spin:     sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load, m.spin.Tick)
}

type loadedMsg struct {
	rendered string
	err      error
}

func (m Model) load() tea.Msg {
	ctx := context.Background()
	bg, err := m.source.FetchBuffered(ctx, fetchtile.TileCoord{Z: m.z, X: m.x, Y: m.y}, m.bufferPx)
	if err != nil {
		return loadedMsg{err: fmt.Errorf("fetch: %w", err)}
	}

	var feats []feature.Feature
	switch m.kind {
	case KindHillshade:
		feats, err = tileserver.HillshadeFeatures(bg.Grid, m.z, m.tileSize)
	case KindTerrain:
		feats = tileserver.TerrainFeatures(bg, tileserver.TerrainSampleStride)
	default:
		feats = tileserver.ContourFeatures(bg.Grid, m.z)
	}
	if err != nil {
		return loadedMsg{err: err}
	}

	var transformed []feature.Feature
	for _, f := range feats {
		transformed = append(transformed, clip.Transform(f, m.bufferPx, m.tileSize, previewExtent)...)
	}
	feats = transformed

	w, h := 80, 40
	return loadedMsg{rendered: Render(feats, previewExtent, w, h)}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.rendered = msg.rendered
		m.status = fmt.Sprintf("%s z=%d x=%d y=%d", m.kind, m.z, m.x, m.y)
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	header := titleStyle.Render(" contourtiles preview ")
	if m.loading {
		return header + "\n\n" + m.spin.View() + " " + m.status
	}
	footer := dimStyle.Render(m.status + "  (q to quit)")
	return header + "\n\n" + m.rendered + "\n\n" + footer
}
