package gui_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/dropdown/gui"
)

func cellCoverage(img *image.Alpha, r rune) int {
	i := int(r - gui.AtlasFirstRune)
	x0, y0 := (i%gui.AtlasColumns)*7, (i/gui.AtlasColumns)*13
	n := 0
	for y := y0; y < y0+13; y++ {
		for x := x0; x < x0+7; x++ {
			if img.AlphaAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestFontAtlas(t *testing.T) {
	img := gui.FontAtlas()
	assert.Equal(t, image.Rect(0, 0, 16*7, 6*13), img.Bounds())
	assert.Same(t, img, gui.FontAtlas(), "built once")

	assert.Zero(t, cellCoverage(img, ' '))
	for _, r := range "Aa?~" {
		assert.Positive(t, cellCoverage(img, r), "%q", r)
	}
	assert.NotEqual(t, cellCoverage(img, 'i'), cellCoverage(img, 'W'))
}
