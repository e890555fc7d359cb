package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndLit(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(3, 7)
	if !c.Lit(3, 7) {
		t.Error("expected sub-pixel (3,7) lit")
	}
	if c.Lit(2, 7) || c.Lit(3, 6) {
		t.Error("neighbors should stay unlit")
	}

	// out of range is ignored, not a panic
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(1000, 1000)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Blot(4, 8)
	c.Clear()
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			if c.Lit(x, y) {
				t.Fatalf("sub-pixel (%d,%d) lit after clear", x, y)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 0)
	for x := 0; x < 20; x++ {
		if !c.Lit(x, 0) {
			t.Fatalf("horizontal line missing sub-pixel %d", x)
		}
	}
}

func TestCanvasDrawCircleStaysCentered(t *testing.T) {
	c := NewCanvas(20, 10)
	cx, cy := 20, 20
	c.DrawCircle(cx, cy, 10, 400)

	// cardinal points of the circle must be lit
	for _, pt := range [][2]int{{cx + 10, cy}, {cx - 10, cy}, {cx, cy + 10}, {cx, cy - 10}} {
		if !c.Lit(pt[0], pt[1]) {
			t.Errorf("expected circle point (%d,%d) lit", pt[0], pt[1])
		}
	}
	if c.Lit(cx, cy) {
		t.Error("circle center should stay unlit")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 cells per row, got %d", len([]rune(line)))
		}
	}
}
