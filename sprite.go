package arbor

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion describes a sub-image within an atlas page.
type TextureRegion struct {
	Page      uint16 // atlas page index
	X, Y      uint16 // top-left corner of the rect within the page
	Width     uint16 // rect width (may differ from OriginalW if trimmed)
	Height    uint16 // rect height (may differ from OriginalH if trimmed)
	OriginalW uint16 // untrimmed width as authored
	OriginalH uint16 // untrimmed height as authored
	OffsetX   int16  // trim offset
	OffsetY   int16
	Rotated   bool // stored 90 degrees clockwise in the page
}

// TrimmedSize returns the displayed size of the trimmed rect.
func (r TextureRegion) TrimmedSize() Size {
	if r.Rotated {
		return Size{float64(r.Height), float64(r.Width)}
	}
	return Size{float64(r.Width), float64(r.Height)}
}

// OriginalSize returns the untrimmed size.
func (r TextureRegion) OriginalSize() Size {
	return Size{float64(r.OriginalW), float64(r.OriginalH)}
}

// Atlas holds atlas page images and a map of named regions.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number. Headless
	// tools may leave it empty.
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
}

// Region returns the region registered under name.
func (a *Atlas) Region(name string) (TextureRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Len returns the number of regions.
func (a *Atlas) Len() int { return len(a.regions) }

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. Both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists) are accepted.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("arbor: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{Pages: pages, regions: make(map[string]TextureRegion)}

	switch {
	case probe.Textures != nil:
		var textures []struct {
			Image  string               `json:"image"`
			Frames map[string]jsonFrame `json:"frames"`
		}
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("arbor: failed to parse atlas textures array: %w", err)
		}
		for i, tex := range textures {
			for name, f := range tex.Frames {
				atlas.regions[name] = f.region(uint16(i))
			}
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("arbor: failed to parse atlas frames: %w", err)
		}
		for name, f := range frames {
			atlas.regions[name] = f.region(0)
		}
	default:
		return nil, fmt.Errorf("arbor: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       struct {
		W int `json:"w"`
		H int `json:"h"`
	} `json:"sourceSize"`
}

func (f jsonFrame) region(page uint16) TextureRegion {
	return TextureRegion{
		Page:      page,
		X:         uint16(f.Frame.X),
		Y:         uint16(f.Frame.Y),
		Width:     uint16(f.Frame.W),
		Height:    uint16(f.Frame.H),
		OriginalW: uint16(f.SourceSize.W),
		OriginalH: uint16(f.SourceSize.H),
		OffsetX:   int16(f.SpriteSourceSize.X),
		OffsetY:   int16(f.SpriteSourceSize.Y),
		Rotated:   f.Rotated,
	}
}

// SizeMode selects where a sprite's size comes from.
type SizeMode uint8

const (
	SizeCustom  SizeMode = iota // the size last set on the node
	SizeTrimmed                 // the region's trimmed rect
	SizeRaw                     // the region's untrimmed size
)

// Sprite shows an atlas region. It is its node's size provider: in the
// trimmed and raw modes the node size follows the region, and setting a
// different size switches the sprite to SizeCustom.
type Sprite struct {
	BaseComponent

	region   TextureRegion
	sizeMode SizeMode
	custom   Size

	color   Color
	opacity uint8
}

// NewSprite returns a sprite showing region at its trimmed size.
func NewSprite(region TextureRegion) *Sprite {
	return &Sprite{region: region, sizeMode: SizeTrimmed, color: ColorWhite, opacity: 255}
}

func (s *Sprite) onAttach(n *Node) {
	if s.sizeMode == SizeCustom && s.custom == (Size{}) {
		s.custom = n.size
	}
	n.SetSizeProvider(s)
}

func (s *Sprite) onDetach(n *Node) {
	if n.sizeProvider == s {
		n.size = n.ContentSize()
		n.SetSizeProvider(nil)
	}
}

// Region returns the displayed region.
func (s *Sprite) Region() TextureRegion { return s.region }

// SetRegion replaces the displayed region.
func (s *Sprite) SetRegion(r TextureRegion) {
	s.change(func() { s.region = r })
}

// SizeMode returns the size mode.
func (s *Sprite) SizeMode() SizeMode { return s.sizeMode }

// SetSizeMode changes the size mode. Switching to SizeCustom keeps the
// current size.
func (s *Sprite) SetSizeMode(m SizeMode) {
	if m == SizeCustom {
		s.custom = s.size()
	}
	s.change(func() { s.sizeMode = m })
}

func (s *Sprite) size() Size {
	switch s.sizeMode {
	case SizeTrimmed:
		return s.region.TrimmedSize()
	case SizeRaw:
		return s.region.OriginalSize()
	}
	return s.custom
}

func (s *Sprite) change(fn func()) {
	n := s.node
	if n == nil || n.sizeProvider != s {
		fn()
		return
	}
	old := n.ContentSize()
	fn()
	n.providerResized(old)
}

func (s *Sprite) TintColor() Color { return s.color }

// DisplayedOpacity returns the opacity mirrored from the node.
func (s *Sprite) DisplayedOpacity() uint8 { return s.opacity }

// Width implements SizeProvider.
func (s *Sprite) Width() float64 { return s.size().Width }

// Height implements SizeProvider.
func (s *Sprite) Height() float64 { return s.size().Height }

// SetContentSize implements SizeProvider.
func (s *Sprite) SetContentSize(w, h float64) {
	if s.size() == (Size{w, h}) {
		return
	}
	s.custom = Size{w, h}
	s.sizeMode = SizeCustom
}

// SetColor implements SizeProvider.
func (s *Sprite) SetColor(c Color) { s.color = c }

// SetOpacity implements SizeProvider.
func (s *Sprite) SetOpacity(o uint8) { s.opacity = o }
