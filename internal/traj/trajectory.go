package traj

import "math"

// Physical constants used for derived display quantities.
const (
	// AU is one astronomical unit in kilometers, the reference unit
	// for displayed radial distance.
	AU = 1.496e8

	// MarsOrbitAU is the mean Mars orbital radius in AU.
	MarsOrbitAU = 1.52

	SecondsPerDay = 86400.0
	DaysPerYear   = 365.25
)

// Trajectory holds one loaded sample table as three index-aligned columns.
// All three slices share the same length and are treated as immutable for
// the lifetime of a playback session.
type Trajectory struct {
	T []float64 // seconds since departure
	X []float64 // km
	Y []float64 // km
}

// Len returns the number of samples.
func (tr *Trajectory) Len() int {
	return len(tr.T)
}

// Radius returns the distance of sample i from the origin, in km.
func (tr *Trajectory) Radius(i int) float64 {
	return math.Hypot(tr.X[i], tr.Y[i])
}

// MaxRadius returns the largest sample distance from the origin, in km.
func (tr *Trajectory) MaxRadius() float64 {
	max := 0.0
	for i := range tr.X {
		if r := tr.Radius(i); r > max {
			max = r
		}
	}
	return max
}

// Bounds returns the half-width of a symmetric square viewport around the
// origin: the maximum sample radius padded by the given fraction.
func (tr *Trajectory) Bounds(pad float64) float64 {
	return tr.MaxRadius() * (1 + pad)
}

// ElapsedDays returns the elapsed mission time of sample i in days.
func (tr *Trajectory) ElapsedDays(i int) float64 {
	return tr.T[i] / SecondsPerDay
}

// ElapsedYears returns the elapsed mission time of sample i in Julian years.
func (tr *Trajectory) ElapsedYears(i int) float64 {
	return tr.T[i] / (SecondsPerDay * DaysPerYear)
}

// RadiusAU returns the distance of sample i from the origin in AU.
func (tr *Trajectory) RadiusAU(i int) float64 {
	return tr.Radius(i) / AU
}
