package dvid

import (
	"fmt"
	"strconv"
	"strings"
)

// Point2d is an ordered list of two 32-bit signed integers, (X, Y).
type Point2d [2]int32

// Prod returns the product of the point elements.
func (p Point2d) Prod() int64 {
	return int64(p[0]) * int64(p[1])
}

func (p Point2d) String() string {
	return fmt.Sprintf("(%d,%d)", p[0], p[1])
}

// Point3d is an ordered list of three 32-bit signed integers, (X, Y, Z).
// It is used for voxel coordinates, volume extents, placement offsets and
// per-axis collapse factors.
type Point3d [3]int32

// Add returns the addition of two points.
func (p Point3d) Add(p2 Point3d) Point3d {
	return Point3d{p[0] + p2[0], p[1] + p2[1], p[2] + p2[2]}
}

// Sub returns the subtraction of the passed point from the receiver.
func (p Point3d) Sub(p2 Point3d) Point3d {
	return Point3d{p[0] - p2[0], p[1] - p2[1], p[2] - p2[2]}
}

// Mod returns a point where each component is the receiver modulo the passed point's components.
func (p Point3d) Mod(p2 Point3d) Point3d {
	return Point3d{p[0] % p2[0], p[1] % p2[1], p[2] % p2[2]}
}

// Div returns the division of the receiver by the passed point.
func (p Point3d) Div(p2 Point3d) Point3d {
	return Point3d{p[0] / p2[0], p[1] / p2[1], p[2] / p2[2]}
}

// Mult returns the multiplication of the receiver by the passed point.
func (p Point3d) Mult(p2 Point3d) Point3d {
	return Point3d{p[0] * p2[0], p[1] * p2[1], p[2] * p2[2]}
}

// Max returns a Point3d where each of its elements are the maximum of two points' elements.
func (p Point3d) Max(p2 Point3d) Point3d {
	result := p
	for i := 0; i < 3; i++ {
		if p[i] < p2[i] {
			result[i] = p2[i]
		}
	}
	return result
}

// Positive returns true if all components are greater than zero.
func (p Point3d) Positive() bool {
	return p[0] > 0 && p[1] > 0 && p[2] > 0
}

// Prod returns the product of the point elements.
func (p Point3d) Prod() int64 {
	return int64(p[0]) * int64(p[1]) * int64(p[2])
}

func (p Point3d) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p[0], p[1], p[2])
}

// StringToPoint3d parses a string of format "%d<sep>%d<sep>%d" into a Point3d.
func StringToPoint3d(str, separator string) (Point3d, error) {
	elems := strings.Split(str, separator)
	if len(elems) != 3 {
		return Point3d{}, fmt.Errorf("cannot convert %q into a 3d point", str)
	}
	var p Point3d
	for i, elem := range elems {
		v, err := strconv.ParseInt(strings.TrimSpace(elem), 10, 32)
		if err != nil {
			return Point3d{}, fmt.Errorf("cannot parse %q in %q: %v", elem, str, err)
		}
		p[i] = int32(v)
	}
	return p, nil
}

// StringToPoint2d parses a string of format "%d<sep>%d" into a Point2d.
func StringToPoint2d(str, separator string) (Point2d, error) {
	elems := strings.Split(str, separator)
	if len(elems) != 2 {
		return Point2d{}, fmt.Errorf("cannot convert %q into a 2d point", str)
	}
	var p Point2d
	for i, elem := range elems {
		v, err := strconv.ParseInt(strings.TrimSpace(elem), 10, 32)
		if err != nil {
			return Point2d{}, fmt.Errorf("cannot parse %q in %q: %v", elem, str, err)
		}
		p[i] = int32(v)
	}
	return p, nil
}
