/*
	Package imageblk reconciles overlapping blocks of intensity or label data.  Two
	writers that cover the same region are combined elementwise: background (0) never
	dilutes a value from the other writer, and where both hold content the result is
	their average.
*/
package imageblk

import (
	"fmt"

	"github.com/janelia-flyem/labelpyramid/dvid"
)

// Intensity is the set of voxel types that can be merged.
type Intensity interface {
	~uint8 | ~uint16 | ~uint32 | ~float32
}

// mean returns the average of two values without wrapping.  For integers the result
// is truncated like (x+y)/2 computed at full width.  For float32 it is (x+y)/2, halving
// each value first only if their sum would overflow.
func mean[T Intensity](x, y T) T {
	var one T = 1
	if one/2 != 0 {
		if s := x + y; s-s == 0 {
			return s / 2
		}
		return x/2 + y/2
	}
	m := x/2 + y/2
	if x-x/2*2 == 1 && y-y/2*2 == 1 {
		m++ // both odd
	}
	return m
}

// merge2 combines a single pair of elements.
func merge2[T Intensity](a, b T) T {
	switch {
	case b == 0:
		return a
	case a == 0:
		return b
	default:
		return mean(a, b)
	}
}

// MergeInto writes the elementwise merge of a and b into dst.  All three slices hold
// a size[1] x size[0] plane in row-major order and must have at least size.Prod()
// elements.  dst may alias a or b.
func MergeInto[T Intensity](dst, a, b []T, size dvid.Point2d) {
	nx, ny := int(size[0]), int(size[1])
	dst, a, b = dst[:nx*ny], a[:nx*ny], b[:nx*ny]
	dvid.ParallelFor(ny, dvid.NumCPU, func(begin, end int) {
		for i := begin * nx; i < end*nx; i++ {
			dst[i] = merge2(a[i], b[i])
		}
	})
}

// Merge returns a newly allocated elementwise merge of a and b.
func Merge[T Intensity](a, b []T, size dvid.Point2d) []T {
	dst := make([]T, size.Prod())
	MergeInto(dst, a, b, size)
	return dst
}

// MergeVolumes merges two equally sized volumes, treating each as Z*Y rows of X voxels.
func MergeVolumes[T Intensity](a, b dvid.Volume[T]) (dvid.Volume[T], error) {
	if err := a.Validate(); err != nil {
		return dvid.Volume[T]{}, err
	}
	if err := b.Validate(); err != nil {
		return dvid.Volume[T]{}, err
	}
	if a.Size != b.Size {
		return dvid.Volume[T]{}, fmt.Errorf("can't merge volume of size %s with volume of size %s", a.Size, b.Size)
	}
	rows := dvid.Point2d{a.Size[0], a.Size[1] * a.Size[2]}
	out := dvid.NewVolume[T](a.Size)
	MergeInto(out.Data, a.Data, b.Data, rows)
	return out, nil
}
