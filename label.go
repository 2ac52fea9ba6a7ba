package arbor

import (
	"math"
	"strings"
)

// TextAlign controls horizontal alignment of label lines.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Overflow selects how a label's box relates to its text.
type Overflow uint8

const (
	// OverflowNone sizes the box to the unwrapped text; SetContentSize is
	// ignored.
	OverflowNone Overflow = iota
	// OverflowClamp keeps the box the caller set and wraps text to its width.
	OverflowClamp
	// OverflowResizeHeight keeps the width the caller set, wraps text to it
	// and grows the height to fit.
	OverflowResizeHeight
)

// Label is a text component. It is its node's size provider, so the node's
// content size follows the text according to the overflow mode.
type Label struct {
	BaseComponent

	text       string
	font       Font
	overflow   Overflow
	align      TextAlign
	lineHeight float64 // 0 = font line height

	box      Size // caller-set box for Clamp and ResizeHeight
	measured Size
	lines    []string
	widths   []float64
	dirty    bool

	color   Color
	opacity uint8
}

// NewLabel returns a label showing s in font.
func NewLabel(s string, font Font) *Label {
	return &Label{text: s, font: font, dirty: true, color: ColorWhite, opacity: 255}
}

func (l *Label) onAttach(n *Node) {
	if l.overflow != OverflowNone && l.box == (Size{}) {
		l.box = n.size
	}
	n.SetSizeProvider(l)
}

func (l *Label) onDetach(n *Node) {
	if n.sizeProvider == l {
		n.size = n.ContentSize()
		n.SetSizeProvider(nil)
	}
}

// String returns the label text.
func (l *Label) String() string { return l.text }

// SetString replaces the text.
func (l *Label) SetString(s string) {
	if l.text == s {
		return
	}
	l.text = s
	l.invalidate()
}

// Font returns the label font.
func (l *Label) Font() Font { return l.font }

// SetFont replaces the font.
func (l *Label) SetFont(f Font) {
	l.font = f
	l.invalidate()
}

// Overflow returns the overflow mode.
func (l *Label) Overflow() Overflow { return l.overflow }

// SetOverflow changes the overflow mode. Switching away from OverflowNone
// keeps the current text size as the box.
func (l *Label) SetOverflow(o Overflow) {
	if l.overflow == o {
		return
	}
	if l.overflow == OverflowNone {
		l.layout()
		l.box = l.measured
	}
	l.overflow = o
	l.invalidate()
}

func (l *Label) Align() TextAlign { return l.align }

func (l *Label) SetAlign(a TextAlign) { l.align = a }

// LineHeight returns the effective line height.
func (l *Label) LineHeight() float64 {
	if l.lineHeight > 0 {
		return l.lineHeight
	}
	if l.font != nil {
		return l.font.LineHeight()
	}
	return 0
}

// SetLineHeight overrides the font line height; 0 restores it.
func (l *Label) SetLineHeight(h float64) {
	l.lineHeight = h
	l.invalidate()
}

// Lines returns the text broken into display lines.
func (l *Label) Lines() []string {
	l.layout()
	return l.lines
}

// LineOffset returns the x offset of line i inside the box for the current
// alignment.
func (l *Label) LineOffset(i int) float64 {
	l.layout()
	w := l.Width()
	switch l.align {
	case TextAlignCenter:
		return (w - l.widths[i]) / 2
	case TextAlignRight:
		return w - l.widths[i]
	}
	return 0
}

func (l *Label) TextColor() Color { return l.color }

// DisplayedOpacity returns the opacity mirrored from the node.
func (l *Label) DisplayedOpacity() uint8 { return l.opacity }

// Width implements SizeProvider.
func (l *Label) Width() float64 {
	l.layout()
	if l.overflow == OverflowNone {
		return l.measured.Width
	}
	return l.box.Width
}

// Height implements SizeProvider.
func (l *Label) Height() float64 {
	l.layout()
	switch l.overflow {
	case OverflowNone, OverflowResizeHeight:
		return l.measured.Height
	}
	return l.box.Height
}

// SetContentSize implements SizeProvider.
func (l *Label) SetContentSize(w, h float64) {
	switch l.overflow {
	case OverflowNone:
		return
	case OverflowResizeHeight:
		h = l.box.Height
	}
	if l.box == (Size{w, h}) {
		return
	}
	l.box = Size{w, h}
	l.dirty = true
}

// SetColor implements SizeProvider.
func (l *Label) SetColor(c Color) { l.color = c }

// SetOpacity implements SizeProvider.
func (l *Label) SetOpacity(o uint8) { l.opacity = o }

func (l *Label) invalidate() {
	var old Size
	n := l.node
	if n != nil && n.sizeProvider == l {
		old = n.ContentSize()
	}
	l.dirty = true
	if n != nil && n.sizeProvider == l {
		n.providerResized(old)
	}
}

func (l *Label) layout() {
	if !l.dirty {
		return
	}
	l.dirty = false
	l.lines = l.lines[:0]
	l.widths = l.widths[:0]
	l.measured = Size{}
	if l.font == nil {
		return
	}

	wrap := 0.0
	if l.overflow != OverflowNone {
		wrap = l.box.Width
	}
	for _, para := range strings.Split(l.text, "\n") {
		l.wrapParagraph(para, wrap)
	}
	for _, w := range l.widths {
		l.measured.Width = math.Max(l.measured.Width, w)
	}
	l.measured.Height = float64(len(l.lines)) * l.LineHeight()
}

// wrapParagraph breaks para greedily at spaces so no line exceeds wrap. A
// single word wider than wrap gets a line of its own. wrap <= 0 disables
// wrapping.
func (l *Label) wrapParagraph(para string, wrap float64) {
	measure := func(s string) float64 {
		w, _ := l.font.MeasureString(s)
		return w
	}
	if wrap <= 0 {
		l.lines = append(l.lines, para)
		l.widths = append(l.widths, measure(para))
		return
	}
	var line string
	for _, word := range strings.Split(para, " ") {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && measure(candidate) > wrap {
			l.lines = append(l.lines, line)
			l.widths = append(l.widths, measure(line))
			line = word
			continue
		}
		line = candidate
	}
	l.lines = append(l.lines, line)
	l.widths = append(l.widths, measure(line))
}
