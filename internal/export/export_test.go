package export

import (
	"bytes"
	"encoding/json"
	"image/gif"
	"strings"
	"testing"

	"github.com/san-kum/trajview/internal/config"
	"github.com/san-kum/trajview/internal/traj"
	"github.com/san-kum/trajview/internal/viz"
)

func testTrajectory() *traj.Trajectory {
	return &traj.Trajectory{
		T: []float64{0, 86400, 172800},
		X: []float64{traj.AU, traj.AU * 1.1, traj.AU * 1.2},
		Y: []float64{0, 1e7, 2e7},
	}
}

func TestWriteGIF(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ThinStep = 1
	p := viz.NewPlayer(testTrajectory(), cfg)

	var buf bytes.Buffer
	if err := WriteGIF(&buf, p, 2, 2); err != nil {
		t.Fatalf("gif export failed: %v", err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("expected 3 frames, got %d", len(g.Image))
	}
	if g.LoopCount != 0 {
		t.Errorf("expected infinite loop, got %d", g.LoopCount)
	}
}

func TestSceneSVG(t *testing.T) {
	cfg := config.DefaultConfig()
	svg := SceneSVG(testTrajectory(), cfg, 800, 800)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("missing trajectory path")
	}
	// two reference orbits plus Sun plus final marker
	if got := strings.Count(svg, "<circle"); got != 4 {
		t.Errorf("expected 4 circles, got %d", got)
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("reference orbits should be dashed")
	}
}

func TestSceneSVGNoOrbits(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ShowOrbits = false
	svg := SceneSVG(testTrajectory(), cfg, 400, 400)

	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected Sun and marker only, got %d circles", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := testTrajectory()
	if err := WriteJSON(&buf, "transfer.csv", tr, 2); err != nil {
		t.Fatalf("json export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if data.Source != "transfer.csv" {
		t.Errorf("source %q", data.Source)
	}
	if data.Samples != 3 {
		t.Errorf("samples %d", data.Samples)
	}
	if len(data.Frames) != 2 || data.Frames[1] != 2 {
		t.Errorf("frames %v", data.Frames)
	}
	if len(data.Days) != 3 || data.Days[1] != 1 {
		t.Errorf("days %v", data.Days)
	}
}
