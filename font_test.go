package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const labelFnt = `info face="Mono" size=32 unicode=1 padding=0,0,0,0
common lineHeight=40 base=30 scaleW=256 scaleH=256 pages=2
page id=0 file="mono_0.png"
page id=1 file="mono_1.png"
chars count=5
char id=32  x=0  y=0 width=0  height=0  xoffset=0 yoffset=0  xadvance=10 page=0
char id=65  x=0  y=0 width=20 height=30 xoffset=1 yoffset=2  xadvance=22 page=0
char id=66  x=20 y=0 width=18 height=30 xoffset=0 yoffset=2  xadvance=20 page=0
char id=67  x=38 y=0 width=19 height=30 xoffset=0 yoffset=2  xadvance=21 page=0
char id=233 x=60 y=4 width=20 height=34 xoffset=0 yoffset=-2 xadvance=22 page=1
kernings count=1
kerning first=65 second=66 amount=-2
`

func loadLabelFont(t *testing.T) *BitmapFont {
	t.Helper()
	f, err := LoadBitmapFont([]byte(labelFnt))
	require.NoError(t, err)
	return f
}

func TestLoadBitmapFont(t *testing.T) {
	f := loadLabelFont(t)
	assert.Equal(t, 40.0, f.LineHeight())
	assert.Len(t, f.advances, 5)
	assert.Equal(t, 22.0, f.advances['é'])
	assert.Equal(t, -2.0, f.kerning[[2]rune{'A', 'B'}])
}

func TestLoadBitmapFontErrors(t *testing.T) {
	_, err := LoadBitmapFont([]byte("info face=\"x\"\nchar id=65 xadvance=12\n"))
	assert.EqualError(t, err, "arbor: bitmap font has no line height")

	_, err = LoadBitmapFont([]byte("common lineHeight=40 base=30\n"))
	assert.EqualError(t, err, "arbor: bitmap font defines no glyphs")
}

func TestMeasureString(t *testing.T) {
	f := loadLabelFont(t)
	tests := []struct {
		in   string
		w, h float64
	}{
		{"", 0, 40},
		{"A", 22, 40},
		{"AB", 40, 40},
		{"BA", 42, 40},
		{"ABC", 61, 40},
		{"A B", 52, 40},
		{"AzB", 42, 40},
		{"AB\nC", 40, 80},
		{"C\nAB", 40, 80},
		{"é", 22, 40},
	}
	for _, tt := range tests {
		w, h := f.MeasureString(tt.in)
		assert.Equal(t, tt.w, w, "width of %q", tt.in)
		assert.Equal(t, tt.h, h, "height of %q", tt.in)
	}
}

func TestLoadTTFFont(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 16)
	require.NoError(t, err)
	assert.Equal(t, 16.0, f.Size())
	assert.Greater(t, f.LineHeight(), 0.0)
	assert.NotNil(t, f.Face())

	w, h := f.MeasureString("AB")
	assert.Greater(t, w, 0.0)
	assert.Greater(t, h, 0.0)

	_, err = LoadTTFFont([]byte("not a font"), 16)
	assert.ErrorContains(t, err, "failed to parse TTF data")
}
