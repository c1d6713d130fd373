package labels

import (
	"slices"
	"sync/atomic"

	"github.com/janelia-flyem/labelpyramid/dvid"
)

// Relabel rewrites every voxel with label from to label to and returns the number of
// voxels changed.
func Relabel[T Label](data []T, from, to T) int64 {
	if from == to {
		return 0
	}
	var changed atomic.Int64
	dvid.ParallelFor(len(data), dvid.NumCPU, func(begin, end int) {
		var n int64
		for i := begin; i < end; i++ {
			if data[i] == from {
				data[i] = to
				n++
			}
		}
		changed.Add(n)
	})
	return changed.Load()
}

// Unique returns the sorted distinct labels in data, including background if present.
// The passed data is not modified.
func Unique[T Label](data []T) []T {
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	return slices.Clip(slices.Compact(sorted))
}
