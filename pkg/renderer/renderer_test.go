package renderer

import (
	"testing"

	"github.com/nesgones/nesgones/pkg/ppu"
)

func TestFrameDimensions(t *testing.T) {
	buf := Render(&ppu.Frame{})
	if len(buf) != 256*256*4 {
		t.Fatalf("buffer length = %d, want %d", len(buf), 256*256*4)
	}
}

func TestEmptyFrameIsEntirelyZero(t *testing.T) {
	buf := Render(&ppu.Frame{})
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0 for a frame with no background or sprites", i, b)
		}
	}
}

func TestBackgroundTilePaintsPixels(t *testing.T) {
	f := &ppu.Frame{
		Background: []ppu.BackgroundTile{
			{PatternLo: 0xFF, PatternHi: 0x00, PaletteID: 0},
		},
	}
	f.Palette[1] = 0x16 // a red-ish NES color for pattern value 1
	buf := Render(f)

	off := (0*Width + 0) * 4
	if buf[off+3] == 0 {
		t.Error("expected the top-left pixel to be painted (alpha != 0)")
	}
}

func TestSpritePriorityHiddenBehindOpaqueBackground(t *testing.T) {
	f := &ppu.Frame{
		Background: []ppu.BackgroundTile{
			{PatternLo: 0xFF, PatternHi: 0x00, PaletteID: 0},
		},
		Sprites: []ppu.SpriteInfo{
			{X: 0, Y: 0, PatternLo: 0xFF, PatternHi: 0x00, Priority: true},
		},
	}
	f.Palette[1] = 0x16    // background color for pattern value 1
	f.Palette[0x11] = 0x2A // sprite color for pattern value 1
	buf := Render(f)
	off := (1*Width + 0) * 4 // sprite's first row lands at Y+1 = 1, inside the opaque tile
	wantR, wantG, wantB := ppu.RGB(0x16)
	if buf[off] != wantR || buf[off+1] != wantG || buf[off+2] != wantB {
		t.Error("sprite with priority=behind-background should be hidden where the background is opaque")
	}
}
