package gui

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontAtlas returns the glyph coverage image renderers upload as the font
// texture. Glyphs come from basicfont.Face7x13, one 7x13 cell per rune in
// the AtlasColumns x AtlasRows layout AddText samples from. The image is
// built once and must not be modified.
var FontAtlas = sync.OnceValue(buildFontAtlas)

const (
	atlasCellW = 7
	atlasCellH = 13
)

func buildFontAtlas() *image.Alpha {
	face := basicfont.Face7x13
	img := image.NewAlpha(image.Rect(0, 0, AtlasColumns*atlasCellW, AtlasRows*atlasCellH))
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i := range AtlasColumns * AtlasRows {
		r := AtlasFirstRune + rune(i)
		if _, ok := face.GlyphAdvance(r); !ok {
			continue
		}
		col, row := i%AtlasColumns, i/AtlasColumns
		d.Dot = fixed.P(col*atlasCellW, row*atlasCellH+face.Ascent)
		d.DrawString(string(r))
	}
	return img
}
