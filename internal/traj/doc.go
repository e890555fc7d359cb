// Package traj loads delimited (time, x, y) trajectory tables and derives
// the display quantities playback needs: radial distance, AU normalization,
// elapsed mission time, viewport bounds, and the thinned frame index table.
//
// Tables are produced by an external integrator; this package only consumes
// them. A load either succeeds completely or fails with a classified error.
package traj
