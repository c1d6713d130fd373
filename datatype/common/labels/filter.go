package labels

import (
	"slices"

	"github.com/janelia-flyem/labelpyramid/dvid"
)

// FilterAllowed zeroes every voxel whose label is not in the allow list.  Background
// stays background whether or not 0 is listed.
func FilterAllowed[T Label](data []T, allow []T) {
	sorted := slices.Clone(allow)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	dvid.ParallelFor(len(data), dvid.NumCPU, func(begin, end int) {
		for i := begin; i < end; i++ {
			if data[i] == 0 {
				continue
			}
			if _, found := slices.BinarySearch(sorted, data[i]); !found {
				data[i] = 0
			}
		}
	})
}

// ShaveDense zeroes data wherever the companion mask is nonzero.  The mask must be
// at least as long as data.
func ShaveDense[T Label](data, mask []T) {
	dvid.ParallelFor(len(data), dvid.NumCPU, func(begin, end int) {
		for i := begin; i < end; i++ {
			if mask[i] != 0 {
				data[i] = 0
			}
		}
	})
}
