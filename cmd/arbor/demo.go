package main

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/arbor"
)

const demoAtlas = `{
  "frames": {
    "button": {
      "frame": {"x": 0, "y": 0, "w": 80, "h": 28},
      "rotated": false, "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 80, "h": 28},
      "sourceSize": {"w": 80, "h": 28}
    },
    "tile": {
      "frame": {"x": 80, "y": 0, "w": 52, "h": 52},
      "rotated": false, "trimmed": true,
      "spriteSourceSize": {"x": 4, "y": 4, "w": 52, "h": 52},
      "sourceSize": {"w": 60, "h": 60}
    }
  }
}`

// demoFont builds a monospace BMFont description covering printable ASCII.
func demoFont() (*arbor.BitmapFont, error) {
	var b strings.Builder
	b.WriteString("info face=\"demo\" size=16\n")
	b.WriteString("common lineHeight=16 base=12 scaleW=256 scaleH=256 pages=1\n")
	for r := 32; r < 127; r++ {
		fmt.Fprintf(&b, "char id=%d x=%d y=%d width=8 height=16 xoffset=0 yoffset=0 xadvance=8 page=0\n",
			r, (r%32)*8, (r/32)*16)
	}
	return arbor.LoadBitmapFont([]byte(b.String()))
}

// buildDemo assembles the demo UI: a toolbar stretched across the top, a
// centered grid of tiles, a title label pinned to the bottom and a spinning
// marker.
func buildDemo(d *arbor.Director) (*arbor.Scene, error) {
	atlas, err := arbor.LoadAtlas([]byte(demoAtlas), nil)
	if err != nil {
		return nil, err
	}
	font, err := demoFont()
	if err != nil {
		return nil, err
	}
	button, _ := atlas.Region("button")
	tile, _ := atlas.Region("tile")

	s := d.NewScene("demo")

	toolbar := d.NewNode("toolbar")
	toolbar.SetAnchorPoint(0.5, 1)
	toolbar.SetContentSize(0, 40)
	s.AddChild(toolbar)
	bar := arbor.NewWidget()
	bar.SetAlignTop(true)
	bar.SetAlignLeft(true)
	bar.SetAlignRight(true)
	bar.SetTop(10)
	bar.SetLeft(10)
	bar.SetRight(10)
	toolbar.AddComponent(bar)
	row := arbor.NewLayout()
	row.SetType(arbor.LayoutHorizontal)
	row.SetPadding(6)
	row.SetSpacingX(8)
	toolbar.AddComponent(row)
	for i, name := range []string{"file", "edit", "view"} {
		btn := d.NewNode(name)
		btn.AddComponent(arbor.NewSprite(button))
		caption := d.NewNode("caption")
		caption.AddComponent(arbor.NewLabel(strings.ToUpper(name), font))
		btn.AddChild(caption)
		toolbar.AddChildWithTag(btn, 0, i)
	}

	grid := d.NewNode("grid")
	grid.SetContentSize(300, 0)
	s.AddChild(grid)
	center := arbor.NewWidget()
	center.SetAlignHorizontalCenter(true)
	center.SetAlignVerticalCenter(true)
	grid.AddComponent(center)
	cells := arbor.NewLayout()
	cells.SetType(arbor.LayoutGrid)
	cells.SetResizeMode(arbor.ResizeContainer)
	cells.SetStartAxis(arbor.AxisHorizontal)
	cells.SetPadding(10)
	cells.SetSpacingX(8)
	cells.SetSpacingY(8)
	grid.AddComponent(cells)
	for i := 0; i < 8; i++ {
		t := d.NewNode(fmt.Sprintf("tile%d", i))
		t.AddComponent(arbor.NewSprite(tile))
		grid.AddChild(t)
	}

	title := d.NewNode("title")
	title.AddComponent(arbor.NewLabel("arbor demo", font))
	s.AddChild(title)
	pin := arbor.NewWidget()
	pin.SetAlignBottom(true)
	pin.SetAlignHorizontalCenter(true)
	pin.SetBottom(20)
	title.AddComponent(pin)

	marker := d.NewNode("marker")
	marker.SetContentSize(24, 24)
	marker.SetPosition(40, 40)
	s.AddChild(marker)
	spin := arbor.NewAnimation(&arbor.AnimationClip{
		Name:     "spin",
		WrapMode: arbor.WrapLoop,
		Tracks: []arbor.Track{
			{Property: arbor.PropRotation, Keys: []arbor.Keyframe{
				{Time: 0, Value: 0, Ease: ease.InOutQuad},
				{Time: 2, Value: 360},
			}},
			{Property: arbor.PropOpacity, Keys: []arbor.Keyframe{
				{Time: 0, Value: 255},
				{Time: 1, Value: 96},
				{Time: 2, Value: 255},
			}},
		},
	})
	spin.PlayOnLoad = true
	marker.AddComponent(spin)

	return s, nil
}
