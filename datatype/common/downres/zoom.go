package downres

import (
	"fmt"

	"github.com/janelia-flyem/labelpyramid/dvid"
)

// zoomScale returns 2^level as the XY scale between two volumes.
func zoomScale(level uint8) (int32, error) {
	if level > 16 {
		return 0, fmt.Errorf("zoom level %d too large", level)
	}
	return int32(1) << level, nil
}

// ZoomOut fills dst by nearest-neighbour sampling of src, which must be 2^level times
// larger than dst in X and Y with the same Z extent.  Unlike the label vote, the voxel at
// the low corner of each block is taken as is.
func ZoomOut[T dvid.VoxelType](src, dst dvid.Volume[T], level uint8) error {
	scale, err := zoomScale(level)
	if err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("bad source: %v", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("bad destination: %v", err)
	}
	expected := dvid.Point3d{dst.Size[0] * scale, dst.Size[1] * scale, dst.Size[2]}
	if src.Size != expected {
		return fmt.Errorf("zoom out by %d needs source size %s, got %s", scale, expected, src.Size)
	}
	nx, ny := int(dst.Size[0]), int(dst.Size[1])
	p := int(scale)
	dvid.ParallelFor(int(dst.Size[2])*ny, dvid.NumCPU, func(begin, end int) {
		for row := begin; row < end; row++ {
			z, y := row/ny, row%ny
			s := z*nx*p*ny*p + y*p*nx*p
			d := row * nx
			for x := 0; x < nx; x++ {
				dst.Data[d+x] = src.Data[s+x*p]
			}
		}
	})
	return nil
}

// ZoomIn fills dst by replicating each src voxel over a 2^level square in X and Y.
// dst must be 2^level times larger than src in X and Y with the same Z extent.
func ZoomIn[T dvid.VoxelType](src, dst dvid.Volume[T], level uint8) error {
	scale, err := zoomScale(level)
	if err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("bad source: %v", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("bad destination: %v", err)
	}
	expected := dvid.Point3d{src.Size[0] * scale, src.Size[1] * scale, src.Size[2]}
	if dst.Size != expected {
		return fmt.Errorf("zoom in by %d needs destination size %s, got %s", scale, expected, dst.Size)
	}
	nx, ny := int(dst.Size[0]), int(dst.Size[1])
	sx, sy := int(src.Size[0]), int(src.Size[1])
	p := int(scale)
	dvid.ParallelFor(int(dst.Size[2])*ny, dvid.NumCPU, func(begin, end int) {
		for row := begin; row < end; row++ {
			z, y := row/ny, row%ny
			s := z*sx*sy + (y/p)*sx
			d := row * nx
			for x := 0; x < nx; x++ {
				dst.Data[d+x] = src.Data[s+x/p]
			}
		}
	})
	return nil
}
