package gui

import (
	"math"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Glyph atlas layout shared with renderers: printable ASCII starting at
// AtlasFirstRune, AtlasColumns cells per row, AtlasRows rows. Renderers
// build their font texture with this layout (see backend/opengl).
const (
	AtlasFirstRune = ' '
	AtlasColumns   = 16
	AtlasRows      = 6
)

var drawLists = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList takes a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawLists.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawLists.Put(dl)
	}
}

// DrawList collects the geometry of one layer for one frame. Consecutive
// primitives that share a clip rect and texture end up in the same DrawCmd.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack [][4]float32
	clip      [4]float32
	texture   uint32
	vtxBase   uint32 // first vertex of the open command
	idxBase   uint32 // first index of the open command
}

var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// Clear empties dl, keeping its buffers.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
	dl.texture = 0
	dl.vtxBase, dl.idxBase = 0, 0
}

// PushClipRect restricts following primitives to the given corners,
// intersected with the current clip rect.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	dl.clip = [4]float32{
		maxf(x1, dl.clip[0]), maxf(y1, dl.clip[1]),
		minf(x2, dl.clip[2]), minf(y2, dl.clip[3]),
	}
	dl.split()
}

// PopClipRect restores the clip rect active before the matching PushClipRect.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.clip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.split()
}

// ClipRect returns the current clip rect.
func (dl *DrawList) ClipRect() Rect {
	return Rect{X: dl.clip[0], Y: dl.clip[1], W: dl.clip[2] - dl.clip[0], H: dl.clip[3] - dl.clip[1]}
}

// SetTexture switches the texture used by following primitives.
func (dl *DrawList) SetTexture(id uint32) {
	if dl.texture == id {
		return
	}
	dl.texture = id
	dl.split()
}

// split closes the open command and opens a new one with the current state.
func (dl *DrawList) split() {
	dl.closeCmd()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.texture,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.vtxBase = uint32(len(dl.VtxBuffer))
	dl.idxBase = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCmd() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxBase
	}
}

// quad appends four vertices and the two triangles covering them.
// It returns the index of the first vertex in VtxBuffer.
func (dl *DrawList) quad(v0, v1, v2, v3 Vertex) int {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.vtxBase)+4 > math.MaxUint16 {
		dl.split()
	}
	first := len(dl.VtxBuffer)
	i := uint16(first - int(dl.vtxBase))
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2, i, i+2, i+3)
	return first
}

func visible(color uint32) bool { return color&0xFF000000 != 0 }

// AddRect fills a rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if !visible(color) || w <= 0 || h <= 0 {
		return
	}
	dl.quad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline strokes the inside edge of a rectangle.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if !visible(color) || thickness <= 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a segment as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if !visible(color) {
		return
	}
	dx, dy := x2-x1, y2-y1
	l := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if l == 0 {
		return
	}
	nx := -dy / l * thickness / 2
	ny := dx / l * thickness / 2
	dl.quad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// RectSlot is a quad reserved in a DrawList and filled in later. It lets a
// container draw its background behind contents whose size is only known
// after they have been drawn.
type RectSlot struct {
	dl    *DrawList
	first int
}

// ReserveRect reserves an invisible quad at the current position.
func (dl *DrawList) ReserveRect() RectSlot {
	return RectSlot{dl: dl, first: dl.quad(Vertex{}, Vertex{}, Vertex{}, Vertex{})}
}

// Fill sets the reserved quad to a filled rectangle.
func (s RectSlot) Fill(x, y, w, h float32, color uint32) {
	if s.dl == nil || s.first+4 > len(s.dl.VtxBuffer) {
		return
	}
	v := s.dl.VtxBuffer[s.first : s.first+4]
	v[0] = Vertex{Pos: [2]float32{x, y}, Color: color}
	v[1] = Vertex{Pos: [2]float32{x + w, y}, Color: color}
	v[2] = Vertex{Pos: [2]float32{x + w, y + h}, Color: color}
	v[3] = Vertex{Pos: [2]float32{x, y + h}, Color: color}
}

// AddText draws text from the glyph atlas, one cell of cellW x cellH per
// column. Runes outside the atlas are drawn as a fallback glyph; wide
// runes take two columns, as in TextWidth.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, cellW, cellH float32) {
	if !visible(color) || text == "" {
		return
	}
	const du, dv = 1.0 / AtlasColumns, 1.0 / AtlasRows
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		g := atlasIndex(r)
		u0 := float32(g%AtlasColumns) * du
		v0 := float32(g/AtlasColumns) * dv
		px := x + float32(col)*cellW
		dl.quad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cellW, y}, TexCoord: [2]float32{u0 + du, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cellW, y + cellH}, TexCoord: [2]float32{u0 + du, v0 + dv}, Color: color},
			Vertex{Pos: [2]float32{px, y + cellH}, TexCoord: [2]float32{u0, v0 + dv}, Color: color},
		)
		col += w
	}
}

// TextWidth returns the number of atlas columns text occupies.
func TextWidth(text string) int { return runewidth.StringWidth(text) }

func atlasIndex(r rune) int {
	r = asciiFallback(r)
	if r < AtlasFirstRune || r >= AtlasFirstRune+AtlasColumns*AtlasRows-1 {
		r = '?'
	}
	return int(r - AtlasFirstRune)
}

// asciiFallback maps common symbols onto the ASCII atlas.
func asciiFallback(r rune) rune {
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•':
		return '*'
	case '—', '–':
		return '-'
	case '…':
		return '~'
	case 'é', 'è', 'ê', 'ë':
		return 'e'
	case 'á', 'à', 'â', 'ä', 'å', 'ã':
		return 'a'
	case 'ó', 'ò', 'ô', 'ö', 'õ':
		return 'o'
	case 'ú', 'ù', 'û', 'ü':
		return 'u'
	case 'í', 'ì', 'î', 'ï':
		return 'i'
	case 'ç':
		return 'c'
	case 'ñ':
		return 'n'
	}
	return r
}

// Finalize closes the last command and drops empty ones. Call it once,
// after the frame's last primitive.
func (dl *DrawList) Finalize() {
	dl.closeCmd()
	kept := dl.CmdBuffer[:0]
	for _, c := range dl.CmdBuffer {
		if c.ElemCount > 0 {
			kept = append(kept, c)
		}
	}
	dl.CmdBuffer = kept
}
