package viz

import (
	"math"
	"testing"
)

func TestNewMapperScale(t *testing.T) {
	// 144x88 surface with padding 12 leaves 120x64 usable. Extents
	// 60x16 give axis scales 2 and 4; the smaller wins on both axes.
	m := NewMapper(60, 16, 144, 88, 12)
	if m.Scale != 2.0 {
		t.Errorf("expected scale 2.0, got %v", m.Scale)
	}
}

func TestMapOrigin(t *testing.T) {
	m := NewMapper(50, 20, 144, 88, 12)
	px, py := m.Map(0, 0)
	if px != 12 || py != 76 {
		t.Errorf("expected origin at (12, 76), got (%v, %v)", px, py)
	}
}

func TestMapOrientation(t *testing.T) {
	m := NewMapper(60, 16, 144, 88, 12)
	px, py := m.Map(10, 5)
	if px != 32 {
		t.Errorf("expected px 32, got %v", px)
	}
	// Physics up must map to surface up, so y=5 sits above the origin row.
	if py != 66 {
		t.Errorf("expected py 66, got %v", py)
	}
}

func TestNewMapperDegenerate(t *testing.T) {
	tests := []struct {
		name                  string
		maxX, maxY, w, h, pad float64
	}{
		{"zero extents", 0, 0, 100, 50, 10},
		{"negative extent", -5, 10, 100, 50, 10},
		{"padding eats width", 40, 20, 18, 50, 10},
		{"padding eats height", 40, 20, 100, 18, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper(tt.maxX, tt.maxY, tt.w, tt.h, tt.pad)
			if m.Scale != 0 {
				t.Errorf("expected zero scale, got %v", m.Scale)
			}
			px, py := m.Map(100, 100)
			if px != tt.pad || py != tt.h-tt.pad {
				t.Errorf("expected degenerate mapper to pin points to the origin, got (%v, %v)", px, py)
			}
		})
	}
}

func TestGridStep(t *testing.T) {
	tests := []struct {
		maxDim float64
		want   float64
	}{
		{45.3, 10},
		{9.9, 1},
		{250, 100},
		{11, 10},
		{1.0, 1},
		{0.5, 0.1},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		got := GridStep(tt.maxDim)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("GridStep(%v): expected %v, got %v", tt.maxDim, tt.want, got)
		}
	}
}
