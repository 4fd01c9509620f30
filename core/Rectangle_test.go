package core

import "testing"

func TestNewCenteredRectangle(t *testing.T) {
	r := NewCenteredRectangle(100, 50, 20, 10)
	if r.X != 90 || r.Y != 45 {
		t.Fatalf("top-left = (%v, %v), want (90, 45)", r.X, r.Y)
	}
	cx, cy := r.Center()
	if cx != 100 || cy != 50 {
		t.Fatalf("center = (%v, %v), want (100, 50)", cx, cy)
	}
}

func TestContainsPointIsInclusive(t *testing.T) {
	r := NewRectangle(10, 10, 20, 20)
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{30, 30, true},
		{20, 20, true},
		{10, 30, true},
		{9.99, 20, false},
		{20, 30.01, false},
		{31, 31, false},
	}
	for _, tt := range tests {
		if got := r.ContainsPoint(tt.x, tt.y); got != tt.want {
			t.Errorf("ContainsPoint(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestIntersects(t *testing.T) {
	base := NewRectangle(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{"overlap", NewRectangle(5, 5, 10, 10), true},
		{"contained", NewRectangle(2, 2, 2, 2), true},
		{"containing", NewRectangle(-5, -5, 30, 30), true},
		{"touching right edge", NewRectangle(10, 0, 5, 5), true},
		{"touching bottom edge", NewRectangle(0, 10, 5, 5), true},
		{"touching corner", NewRectangle(10, 10, 5, 5), true},
		{"left of", NewRectangle(-6, 0, 5, 5), false},
		{"below", NewRectangle(0, 10.5, 5, 5), false},
		{"diagonal apart", NewRectangle(11, 11, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Fatalf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Fatalf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectsIsSymmetric(t *testing.T) {
	rects := []Rectangle{
		NewRectangle(0, 0, 10, 10),
		NewRectangle(5, 5, 1, 1),
		NewRectangle(10, 0, 3, 3),
		NewRectangle(-20, -20, 5, 5),
		NewRectangle(100, 40, 0, 0),
		NewCenteredRectangle(25, 360, PaddleWidth, PaddleHeight),
		NewCenteredRectangle(640, 360, BallWidth, BallHeight),
	}
	for i, a := range rects {
		for j, b := range rects {
			if a.Intersects(b) != b.Intersects(a) {
				t.Fatalf("rects %d and %d disagree on intersection", i, j)
			}
		}
	}
}

func TestRectangleIntersectsItself(t *testing.T) {
	for _, r := range []Rectangle{
		NewRectangle(0, 0, 1, 1),
		NewRectangle(-3.5, 7.25, 15, 15),
		NewRectangle(1200, 700, 20, 100),
	} {
		if !r.Intersects(r) {
			t.Fatalf("%+v does not intersect itself", r)
		}
	}
}
