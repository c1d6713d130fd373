package dvid

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// VoxelType is the set of element types a Volume can hold: 8, 16, 32 and 64-bit
// unsigned integers and 32-bit floats.  Zero is always the background value.
type VoxelType interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32
}

// Volume is a flat, row-major array of voxels.  Size is given as (X, Y, Z) like all
// other points, but the data is laid out in Z, Y, then X order so the voxel at (x, y, z)
// is at index z*Size[1]*Size[0] + y*Size[0] + x.
type Volume[T VoxelType] struct {
	Data []T
	Size Point3d
}

// NewVolume allocates a zeroed volume of the given size.
func NewVolume[T VoxelType](size Point3d) Volume[T] {
	return Volume[T]{
		Data: make([]T, size.Prod()),
		Size: size,
	}
}

// MakeVolume wraps an existing slice, which is not copied.
func MakeVolume[T VoxelType](data []T, size Point3d) (Volume[T], error) {
	v := Volume[T]{Data: data, Size: size}
	if err := v.Validate(); err != nil {
		return Volume[T]{}, err
	}
	return v, nil
}

// Index returns the flat index of voxel (x, y, z).
func (v Volume[T]) Index(x, y, z int32) int {
	return int(z)*int(v.Size[1])*int(v.Size[0]) + int(y)*int(v.Size[0]) + int(x)
}

// Value returns the voxel at (x, y, z).
func (v Volume[T]) Value(x, y, z int32) T {
	return v.Data[v.Index(x, y, z)]
}

// SetValue sets the voxel at (x, y, z).
func (v Volume[T]) SetValue(x, y, z int32, value T) {
	v.Data[v.Index(x, y, z)] = value
}

// NumVoxels returns the number of voxels given by the size.
func (v Volume[T]) NumVoxels() int64 {
	return v.Size.Prod()
}

// NumBytes returns the number of bytes used by the voxel data.
func (v Volume[T]) NumBytes() uint64 {
	var zero T
	return uint64(len(v.Data)) * uint64(unsafe.Sizeof(zero))
}

// Validate returns an error if the size is not positive or the data length does not
// match the size.
func (v Volume[T]) Validate() error {
	if !v.Size.Positive() {
		return fmt.Errorf("volume size %s must be positive in all dimensions", v.Size)
	}
	if int64(len(v.Data)) != v.Size.Prod() {
		return fmt.Errorf("volume of size %s needs %d voxels, got %d", v.Size, v.Size.Prod(), len(v.Data))
	}
	return nil
}

func (v Volume[T]) String() string {
	return fmt.Sprintf("%T volume %s (%s)", v.Data, v.Size, humanize.Bytes(v.NumBytes()))
}
