// Package renderer turns a ppu.Frame into the 256x256 RGBA buffer the
// core hands back from step_frame. It is a pure function: the same
// Frame always produces the same bytes, with no reference to the PPU
// or CPU beyond the snapshot it's given.
package renderer

import "github.com/nesgones/nesgones/pkg/ppu"

const (
	Width       = 256
	Height      = 256
	VisibleRows = 224
	bytesPerPx  = 4
)

// Render composites a Frame's background tiles and sprite list into
// an RGBA byte slice, row-major with stride Width*4. Rows at or past
// VisibleRows are left zero, matching real NES output (224 visible
// scanlines out of the 256-tall buffer the core always returns).
func Render(f *ppu.Frame) []byte {
	buf := make([]byte, Width*Height*bytesPerPx)
	if f == nil {
		return buf
	}

	opaque := renderBackground(buf, f)
	renderSprites(buf, f, opaque)
	return buf
}

// renderBackground draws every background tile and returns, for each
// screen pixel, whether the background pattern value there was
// nonzero (opaque) — sprites with the priority bit set use this to
// decide whether they're occluded.
func renderBackground(buf []byte, f *ppu.Frame) [Height][Width]bool {
	var opaque [Height][Width]bool
	fineX := int(f.ScrollX) % 8
	fineY := int(f.ScrollY) % 8

	for i, tile := range f.Background {
		tileX := (i % 33) * 8
		tileY := (i / 33) * 8
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				value := patternPixel(tile.PatternLo, tile.PatternHi, row, col)
				x := tileX + col - fineX
				y := tileY + row - fineY
				if x < 0 || x >= Width || y < 0 || y >= VisibleRows {
					continue
				}
				colorIndex := f.Palette[int(tile.PaletteID)*4+int(value)]
				writePixel(buf, x, y, colorIndex)
				if value != 0 {
					opaque[y][x] = true
				}
			}
		}
	}
	return opaque
}

func renderSprites(buf []byte, f *ppu.Frame, bgOpaque [Height][Width]bool) {
	for _, s := range f.Sprites {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				srcRow, srcCol := row, col
				if s.FlipV {
					srcRow = 7 - row
				}
				if s.FlipH {
					srcCol = 7 - col
				}
				value := patternPixel(s.PatternLo, s.PatternHi, srcRow, srcCol)
				if value == 0 {
					continue
				}
				x := int(s.X) + col
				y := int(s.Y) + 1 + row // NES sprites render one line below their Y byte
				if x < 0 || x >= Width || y < 0 || y >= VisibleRows {
					continue
				}
				if s.Priority && bgOpaque[y][x] {
					continue
				}
				colorIndex := f.Palette[int(s.PaletteID)*4+0x10+int(value)]
				writePixel(buf, x, y, colorIndex)
			}
		}
	}
}

// patternPixel decodes the 2-bit pixel value at (row, col) of an 8x8
// tile from its two bit-plane bytes, per spec.md §4.2's
// ((low>>(7-c))&1) | (((high>>(7-c))&1)<<1) formula.
func patternPixel(lo, hi uint8, row, col int) uint8 {
	shift := uint(7 - col)
	low := (lo >> shift) & 1
	high := (hi >> shift) & 1
	return low | (high << 1)
}

func writePixel(buf []byte, x, y int, colorIndex uint8) {
	r, g, b := ppu.RGB(colorIndex)
	off := (y*Width + x) * bytesPerPx
	buf[off] = r
	buf[off+1] = g
	buf[off+2] = b
	buf[off+3] = 0xFF
}
