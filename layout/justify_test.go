package layout

import (
	"image"
	"testing"

	"github.com/gogpu/fbtext/raster"
)

func TestAnchor(t *testing.T) {
	box := raster.BoundingBox{MinX: 3, MaxX: 203, MinY: -40, MaxY: 9}
	m := Margins{Left: 20, Right: 20}

	tests := []struct {
		dir  Direction
		want int
	}{
		{DirectionLTR, 20},
		{DirectionRTL, 580},
		{DirectionTTB, 300},
		{Direction(42), 20},
	}
	for _, tt := range tests {
		if got := Anchor(tt.dir, box, 800, m); got != tt.want {
			t.Errorf("Anchor(%v, width 200, 800) = %d, want %d", tt.dir, got, tt.want)
		}
	}
}

func TestAnchor_AsymmetricMargins(t *testing.T) {
	box := raster.BoundingBox{MaxX: 100}
	m := Margins{Left: 5, Right: 30}
	if got := Anchor(DirectionLTR, box, 400, m); got != 5 {
		t.Errorf("LTR anchor = %d, want 5", got)
	}
	if got := Anchor(DirectionRTL, box, 400, m); got != 270 {
		t.Errorf("RTL anchor = %d, want 270", got)
	}
	if got := Anchor(DirectionTTB, box, 400, m); got != 150 {
		t.Errorf("TTB anchor = %d, want 150 (margins ignored)", got)
	}
}

func TestAnchor_WiderThanSlot(t *testing.T) {
	box := raster.BoundingBox{MaxX: 900}
	if got := Anchor(DirectionRTL, box, 800, DefaultMargins); got != -120 {
		t.Errorf("RTL anchor = %d, want -120", got)
	}
}

func TestOrigin(t *testing.T) {
	box := raster.BoundingBox{MaxX: 200}
	slot := image.Rect(100, 125, 900, 200)
	if got, want := Origin(DirectionRTL, box, slot, DefaultMargins), image.Pt(680, 125); got != want {
		t.Errorf("Origin() = %v, want %v", got, want)
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		in     string
		want   Direction
		ok     bool
		orient raster.Orientation
		just   Justification
	}{
		{"ltr", DirectionLTR, true, raster.Horizontal, JustifyLeft},
		{"RTL", DirectionRTL, true, raster.Horizontal, JustifyRight},
		{"Ttb", DirectionTTB, true, raster.Vertical, JustifyCenter},
	}
	for _, tt := range tests {
		d, ok := ParseDirection(tt.in)
		if d != tt.want || ok != tt.ok {
			t.Errorf("ParseDirection(%q) = %v, %v, want %v, %v", tt.in, d, ok, tt.want, tt.ok)
		}
		if d.Orientation() != tt.orient {
			t.Errorf("%v.Orientation() = %v, want %v", d, d.Orientation(), tt.orient)
		}
		if d.Justification() != tt.just {
			t.Errorf("%v.Justification() = %v, want %v", d, d.Justification(), tt.just)
		}
	}
	if _, ok := ParseDirection("btt"); ok {
		t.Error(`ParseDirection("btt") ok = true`)
	}
	if Direction(9).String() != unknownStr {
		t.Errorf("Direction(9).String() = %q", Direction(9).String())
	}
}
