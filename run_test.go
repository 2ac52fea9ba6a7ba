package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugBoxes(t *testing.T) {
	d, s, _ := newRunningScene(t)
	panel := d.NewNode("panel")
	panel.SetContentSize(100, 50)
	panel.SetPosition(200, 100)
	panel.SetOpacity(128)
	s.AddChild(panel)

	caption := d.NewNode("caption")
	l := NewLabel("AB", loadLabelFont(t))
	caption.AddComponent(l)
	panel.AddChild(caption)

	hidden := d.NewNode("hidden")
	hidden.AddChild(d.NewNode("under-hidden"))
	hidden.SetActive(false)
	s.AddChild(hidden)

	d.Tick(testDT)
	boxes := DebugBoxes(s)
	require.Len(t, boxes, 2)

	assert.Equal(t, "panel", boxes[0].Name)
	assertRect(t, Rect{X: 150, Y: 515, Width: 100, Height: 50}, boxes[0].Bounds)
	assert.Equal(t, uint8(128), boxes[0].Opacity)
	assert.Equal(t, ColorWhite, boxes[0].Color)
	assert.Nil(t, boxes[0].Label)

	assert.Equal(t, "caption", boxes[1].Name)
	assertRect(t, Rect{X: 180, Y: 520, Width: 40, Height: 40}, boxes[1].Bounds)
	assert.Equal(t, uint8(128), boxes[1].Opacity)
	assert.Same(t, l, boxes[1].Label)
}

func TestDebugBoxesWithoutScene(t *testing.T) {
	assert.Nil(t, DebugBoxes(nil))

	d, s, _ := newRunningScene(t)
	d.Close()
	assert.Nil(t, DebugBoxes(s))
}

func TestGameTicksDirector(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TPS = 30
	d, _ := newTestDirectorWith(t, cfg)
	g := NewGame(d)
	assert.InDelta(t, 1.0/30, g.dt, epsilon)
	assert.True(t, g.Overlay)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Equal(t, uint64(2), d.Frame())
}

func TestGameLayoutUsesDesignResolution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DesignResolution = Resolution{Width: 320, Height: 180}
	cfg.VisibleRect = Rect{Width: 320, Height: 180}
	d, _ := newTestDirectorWith(t, cfg)
	w, h := NewGame(d).Layout(1920, 1080)
	assert.Equal(t, 320, w)
	assert.Equal(t, 180, h)
}
