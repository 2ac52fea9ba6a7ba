package arbor

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugBox is one entry of the debug overlay: a node's world bounds in
// screen space (origin top-left, Y down).
type DebugBox struct {
	Name    string
	Bounds  Rect
	Opacity uint8
	Color   Color
	Label   *Label
}

// DebugBoxes collects the overlay boxes of every node active in the
// hierarchy under s, in draw order. Bounds come from the render nodes, so
// they reflect the last sync.
func DebugBoxes(s *Scene) []DebugBox {
	if s == nil || !s.IsValid() {
		return nil
	}
	screenH := s.director.DesignResolution().Height
	var out []DebugBox
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.children {
			if !c.activeInHierarchy {
				continue
			}
			b := c.render.WorldBounds()
			box := DebugBox{
				Name:    c.Name(),
				Bounds:  Rect{X: b.X, Y: screenH - b.Top(), Width: b.Width, Height: b.Height},
				Opacity: c.render.DisplayedOpacity(),
				Color:   c.render.Color(),
			}
			if l, ok := c.sizeProvider.(*Label); ok {
				box.Label = l
			}
			out = append(out, box)
			walk(c)
		}
	}
	walk(&s.Node)
	return out
}

// Game adapts a Director to ebiten.Game: each ebiten update is one Tick.
type Game struct {
	director *Director
	dt       float64

	// Overlay draws node boxes and label text.
	Overlay bool
	// Background fills the screen before the overlay.
	Background color.Color
}

// NewGame returns a game ticking d at its configured TPS.
func NewGame(d *Director) *Game {
	return &Game{
		director:   d,
		dt:         1 / float64(d.cfg.TPS),
		Overlay:    true,
		Background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.director.Tick(g.dt)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)
	if !g.Overlay {
		return
	}
	for _, b := range DebugBoxes(g.director.scene) {
		clr := color.RGBA{R: b.Color.R, G: b.Color.G, B: b.Color.B, A: b.Opacity}
		vector.StrokeRect(screen,
			float32(b.Bounds.X), float32(b.Bounds.Y),
			float32(b.Bounds.Width), float32(b.Bounds.Height),
			1, clr, false)
		if b.Label != nil {
			drawLabel(screen, b)
		}
	}
	if g.director.cfg.Debug {
		ebitenutil.DebugPrint(screen, g.director.Stats().Total().String())
	}
}

func drawLabel(screen *ebiten.Image, b DebugBox) {
	l := b.Label
	lh := l.LineHeight()
	for i, line := range l.Lines() {
		x := b.Bounds.X + l.LineOffset(i)
		y := b.Bounds.Y + float64(i)*lh
		if f, ok := l.Font().(*TTFFont); ok {
			op := &text.DrawOptions{}
			op.GeoM.Translate(x, y)
			c := l.TextColor()
			op.ColorScale.ScaleWithColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
			op.ColorScale.ScaleAlpha(float32(b.Opacity) / 255)
			text.Draw(screen, line, f.Face(), op)
			continue
		}
		ebitenutil.DebugPrintAt(screen, line, int(x), int(y))
	}
}

// Layout implements ebiten.Game. The logical screen is the design resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	r := g.director.DesignResolution()
	return int(r.Width), int(r.Height)
}

// Run opens a window and runs d until the window closes, then closes d.
func Run(d *Director) error {
	res := d.DesignResolution()
	ebiten.SetWindowTitle(d.cfg.Title)
	ebiten.SetWindowSize(int(res.Width), int(res.Height))
	ebiten.SetTPS(d.cfg.TPS)
	defer d.Close()
	d.log.WithField("component", "arbor").WithField("title", d.cfg.Title).Info("window opened")
	return ebiten.RunGame(NewGame(d))
}
