package traj

// FrameIndices builds the playback frame table for n samples: every step-th
// sample index starting at 0. A step below 1 is clamped to 1. The final
// sample index n-1 is always included, even when the stride would skip it,
// so playback always reaches the end of the trajectory.
func FrameIndices(n, step int) []int {
	if n < 1 {
		return nil
	}
	if step < 1 {
		step = 1
	}

	frames := make([]int, 0, n/step+2)
	for i := 0; i < n; i += step {
		frames = append(frames, i)
	}
	if frames[len(frames)-1] != n-1 {
		frames = append(frames, n-1)
	}
	return frames
}
