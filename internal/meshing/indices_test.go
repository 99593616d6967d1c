package meshing

import (
	"reflect"
	"testing"
)

func TestComputeCubeIndices(t *testing.T) {
	tests := []struct {
		vertices int
		want     []uint32
	}{
		{0, []uint32{}},
		{4, []uint32{0, 1, 2, 2, 1, 3}},
		{8, []uint32{0, 1, 2, 2, 1, 3, 4, 5, 6, 6, 5, 7}},
	}
	for _, tt := range tests {
		if got := ComputeCubeIndices(tt.vertices); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ComputeCubeIndices(%d) = %v, want %v", tt.vertices, got, tt.want)
		}
	}
}

func TestComputeCubeIndicesLength(t *testing.T) {
	for _, n := range []int{12, 400, 4096} {
		got := ComputeCubeIndices(n)
		if len(got) != IndicesPerQuad*(n/VerticesPerQuad) {
			t.Errorf("len(ComputeCubeIndices(%d)) = %d", n, len(got))
		}
		if last := got[len(got)-1]; last != uint32(n-1) {
			t.Errorf("last index for %d vertices = %d", n, last)
		}
	}
}

func TestComputeCubeIndicesRejectsPartialQuads(t *testing.T) {
	for _, n := range []int{1, 6, -4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ComputeCubeIndices(%d) did not panic", n)
				}
			}()
			ComputeCubeIndices(n)
		}()
	}
}
