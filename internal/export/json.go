package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/trajview/internal/traj"
)

// ExportData is the JSON shape for one trajectory plus the derived
// telemetry series the player displays.
type ExportData struct {
	Source   string    `json:"source"`
	Samples  int       `json:"samples"`
	ThinStep int       `json:"thin_step"`
	Frames   []int     `json:"frames"`
	Times    []float64 `json:"times"`
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
	Days     []float64 `json:"days"`
	Years    []float64 `json:"years"`
	RadiusAU []float64 `json:"radius_au"`
}

// WriteJSON encodes the trajectory, its frame index table for the given
// stride, and the per-sample telemetry series.
func WriteJSON(w io.Writer, source string, tr *traj.Trajectory, thinStep int) error {
	data := ExportData{
		Source:   source,
		Samples:  tr.Len(),
		ThinStep: thinStep,
		Frames:   traj.FrameIndices(tr.Len(), thinStep),
		Times:    tr.T,
		X:        tr.X,
		Y:        tr.Y,
		Days:     make([]float64, tr.Len()),
		Years:    make([]float64, tr.Len()),
		RadiusAU: make([]float64, tr.Len()),
	}
	for i := 0; i < tr.Len(); i++ {
		data.Days[i] = tr.ElapsedDays(i)
		data.Years[i] = tr.ElapsedYears(i)
		data.RadiusAU[i] = tr.RadiusAU(i)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
