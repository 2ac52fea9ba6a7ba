package arbor

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font measures text for a Label.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
}

// BitmapFont measures text from the advance and kerning tables of a BMFont
// description. Glyph images are not needed for layout and are not kept.
type BitmapFont struct {
	lineHeight float64
	advances   map[rune]float64
	kerning    map[[2]rune]float64
}

// LoadBitmapFont reads the text variant of a BMFont .fnt file.
func LoadBitmapFont(data []byte) (*BitmapFont, error) {
	f := &BitmapFont{
		advances: make(map[rune]float64),
		kerning:  make(map[[2]rune]float64),
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		attrs := numericAttrs(tokens[1:])
		switch tokens[0] {
		case "common":
			f.lineHeight = attrs["lineHeight"]
		case "char":
			f.advances[rune(attrs["id"])] = attrs["xadvance"]
		case "kerning":
			f.kerning[[2]rune{rune(attrs["first"]), rune(attrs["second"])}] = attrs["amount"]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("arbor: reading bitmap font: %w", err)
	}
	if f.lineHeight <= 0 {
		return nil, fmt.Errorf("arbor: bitmap font has no line height")
	}
	if len(f.advances) == 0 {
		return nil, fmt.Errorf("arbor: bitmap font defines no glyphs")
	}
	return f, nil
}

// numericAttrs collects the key=value tokens whose value is a number.
func numericAttrs(tokens []string) map[string]float64 {
	out := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		key, val, ok := strings.Cut(tok, "=")
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(val, 64); err == nil {
			out[key] = v
		}
	}
	return out
}

// MeasureString returns the widest line's advance and the line count times
// the line height. Runes without a glyph are skipped and break kerning.
func (f *BitmapFont) MeasureString(s string) (width, height float64) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		var x float64
		prev := rune(-1)
		for _, r := range line {
			adv, ok := f.advances[r]
			if !ok {
				prev = -1
				continue
			}
			if prev >= 0 {
				x += f.kerning[[2]rune{prev, r}]
			}
			x += adv
			prev = r
		}
		width = math.Max(width, x)
	}
	return width, float64(len(lines)) * f.lineHeight
}

// LineHeight returns the vertical distance between baselines.
func (f *BitmapFont) LineHeight() float64 { return f.lineHeight }

// TTFFont measures text with Ebitengine's text/v2.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("arbor: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, size: size, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 { return f.lh }

// Size returns the font size in points.
func (f *TTFFont) Size() float64 { return f.size }

// Face returns the underlying face for drawing.
func (f *TTFFont) Face() *text.GoTextFace { return f.face }
