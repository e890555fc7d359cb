package traj

import (
	"reflect"
	"testing"
)

func TestFrameIndices(t *testing.T) {
	tests := []struct {
		name     string
		n, step  int
		expected []int
	}{
		{"step one is identity", 3, 1, []int{0, 1, 2}},
		{"even division", 9, 4, []int{0, 4, 8}},
		{"final index forced", 10, 4, []int{0, 4, 8, 9}},
		{"step larger than table", 5, 100, []int{0, 4}},
		{"single sample", 1, 5000, []int{0}},
		{"step clamped to one", 3, 0, []int{0, 1, 2}},
		{"negative step clamped", 3, -7, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameIndices(tt.n, tt.step)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("FrameIndices(%d, %d) = %v, want %v", tt.n, tt.step, got, tt.expected)
			}
		})
	}
}

func TestFrameIndicesLargeTable(t *testing.T) {
	got := FrameIndices(10001, 5000)
	expected := []int{0, 5000, 10000}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("FrameIndices(10001, 5000) = %v, want %v", got, expected)
	}
}

func TestFrameIndicesLastAlwaysFinal(t *testing.T) {
	for n := 1; n <= 50; n++ {
		for step := 1; step <= 13; step++ {
			frames := FrameIndices(n, step)
			if frames[len(frames)-1] != n-1 {
				t.Fatalf("n=%d step=%d: last frame %d, want %d", n, step, frames[len(frames)-1], n-1)
			}
		}
	}
}

func TestFrameIndicesEmpty(t *testing.T) {
	if got := FrameIndices(0, 10); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
}
