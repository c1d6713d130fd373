/*
	Package downres computes lower-resolution levels of label volumes.  Each coarse voxel
	is voted from a small neighborhood of the finer level: a 2x2 block in XY for
	anisotropic levels, or a 2x2x2 block for isotropic levels where the upper plane is
	voted first and the lower plane is only consulted if the upper vote is background.

	Tiles of a level can be computed independently and written at an offset into a shared
	coarse canvas, so a large level can be assembled piecewise.
*/
package downres

import (
	"fmt"

	"github.com/janelia-flyem/labelpyramid/datatype/common/labels"
	"github.com/janelia-flyem/labelpyramid/dvid"
)

var (
	// AnisotropicFactor collapses X and Y by 2 and keeps Z.
	AnisotropicFactor = dvid.Point3d{2, 2, 1}

	// IsotropicFactor collapses all three axes by 2.
	IsotropicFactor = dvid.Point3d{2, 2, 2}
)

// Builder writes downsampled label tiles.  The zero value uses the consensus vote and
// dvid.NumCPU workers.
type Builder[T labels.Label] struct {
	// Vote collapses a 2x2 neighborhood.  If nil, labels.ResolveLabel4 is used.
	Vote labels.VoteFunc[T]

	// Workers bounds the goroutines used per call.  If <= 0, dvid.NumCPU is used.
	Workers int
}

func (b Builder[T]) voteFunc() labels.VoteFunc[T] {
	if b.Vote == nil {
		return labels.ResolveLabel4[T]
	}
	return b.Vote
}

// Anisotropic collapses every 2x2 XY block of each Z plane of src and writes the result
// into dst at the given offset, in dst voxels.  The Z extent is unchanged.
func (b Builder[T]) Anisotropic(src, dst dvid.Volume[T], offset dvid.Point3d) {
	b.build(src, dst, AnisotropicFactor, offset)
}

// Isotropic collapses every 2x2x2 block of src and writes the result into dst at the
// given offset.  The upper plane of a block is voted first; its lower plane is voted
// only if the upper vote is background.
func (b Builder[T]) Isotropic(src, dst dvid.Volume[T], offset dvid.Point3d) {
	b.build(src, dst, IsotropicFactor, offset)
}

// Generalized collapses src by the per-axis factor into dst, which must be exactly
// src.Size / factor.  Only the leading two voxels of a block along X and Y vote (the
// same voxel twice when the factor on that axis is 1), and when the Z factor is at least
// 2 the next plane is the background fallback.
func (b Builder[T]) Generalized(src dvid.Volume[T], factor dvid.Point3d, dst dvid.Volume[T]) {
	b.build(src, dst, factor, dvid.Point3d{})
}

// build is shared by all variants.  Destination rows are partitioned across workers;
// each destination voxel maps to a disjoint source block so no synchronization is needed.
func (b Builder[T]) build(src, dst dvid.Volume[T], factor, offset dvid.Point3d) {
	vote := b.voteFunc()

	out := src.Size.Div(factor)
	nx, ny := int(src.Size[0]), int(src.Size[1])
	srcPlane := nx * ny
	dstX := int(dst.Size[0])
	dstPlane := dstX * int(dst.Size[1])
	fx, fy, fz := int(factor[0]), int(factor[1]), int(factor[2])

	var dx, dy int // offsets of the second voxel along X and Y within a block
	if fx > 1 {
		dx = 1
	}
	if fy > 1 {
		dy = nx
	}
	fallback := fz > 1

	outX, outY := int(out[0]), int(out[1])
	ox, oy, oz := int(offset[0]), int(offset[1]), int(offset[2])

	dvid.ParallelFor(int(out[2])*outY, b.Workers, func(begin, end int) {
		for row := begin; row < end; row++ {
			z := row / outY
			y := row % outY
			s := z*fz*srcPlane + y*fy*nx
			d := (z+oz)*dstPlane + (y+oy)*dstX + ox
			for x := 0; x < outX; x++ {
				i := s + x*fx
				value := vote(src.Data[i], src.Data[i+dx], src.Data[i+dy], src.Data[i+dy+dx])
				if value == 0 && fallback {
					i += srcPlane
					value = vote(src.Data[i], src.Data[i+dx], src.Data[i+dy], src.Data[i+dy+dx])
				}
				dst.Data[d+x] = value
			}
		}
	})
}

// BuildTileAnisotropic is Builder.Anisotropic with the default vote and worker count.
func BuildTileAnisotropic[T labels.Label](src, dst dvid.Volume[T], offset dvid.Point3d) {
	Builder[T]{}.Anisotropic(src, dst, offset)
}

// BuildTileIsotropic is Builder.Isotropic with the default vote and worker count.
func BuildTileIsotropic[T labels.Label](src, dst dvid.Volume[T], offset dvid.Point3d) {
	Builder[T]{}.Isotropic(src, dst, offset)
}

// BuildTileGeneralized is Builder.Generalized with the default vote and worker count.
func BuildTileGeneralized[T labels.Label](src dvid.Volume[T], factor dvid.Point3d, dst dvid.Volume[T]) {
	Builder[T]{}.Generalized(src, factor, dst)
}

// CheckTile returns an error if collapsing src by factor and placing it at offset would
// read or write outside the given volumes.  The builders do no checking of their own.
func CheckTile[T dvid.VoxelType](src, dst dvid.Volume[T], offset, factor dvid.Point3d) error {
	if !factor.Positive() {
		return fmt.Errorf("collapse factor %s must be positive", factor)
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("bad source: %v", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("bad destination: %v", err)
	}
	if rem := src.Size.Mod(factor); rem != (dvid.Point3d{}) {
		return fmt.Errorf("source size %s not divisible by collapse factor %s", src.Size, factor)
	}
	if offset[0] < 0 || offset[1] < 0 || offset[2] < 0 {
		return fmt.Errorf("placement offset %s cannot be negative", offset)
	}
	end := offset.Add(src.Size.Div(factor))
	if end.Max(dst.Size) != dst.Size {
		return fmt.Errorf("tile of size %s collapsed by %s at offset %s exceeds destination size %s",
			src.Size, factor, offset, dst.Size)
	}
	return nil
}
