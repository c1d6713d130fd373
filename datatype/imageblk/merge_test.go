package imageblk

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/janelia-flyem/labelpyramid/dvid"
)

func TestMergeRules(t *testing.T) {
	a := []uint8{0, 7, 0, 3, 200, 255, 9}
	b := []uint8{0, 0, 5, 4, 100, 255, 9}
	expected := []uint8{0, 7, 5, 3, 150, 255, 9}
	got := Merge(a, b, dvid.Point2d{7, 1})
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("uint8 merge got %v, expected %v", got, expected)
	}
}

func TestMergeFloat(t *testing.T) {
	a := []float32{3, 0, 1.5, -2}
	b := []float32{4, 0.25, 0, 3}
	expected := []float32{3.5, 0.25, 1.5, 0.5}
	got := Merge(a, b, dvid.Point2d{2, 2})
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("float32 merge got %v, expected %v", got, expected)
	}

	// Subnormals must average without integer rounding, and huge values without overflow.
	tiny1 := math.Float32frombits(1)
	tiny3 := math.Float32frombits(3)
	edges := []struct {
		a, b, want float32
	}{
		{tiny1, tiny1, tiny1},
		{tiny3, tiny3, tiny3},
		{tiny3, 1, 0.5},
		{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
	for _, tc := range edges {
		got := Merge([]float32{tc.a}, []float32{tc.b}, dvid.Point2d{1, 1})
		if got[0] != tc.want {
			t.Errorf("merge(%g, %g) = %g, expected %g", tc.a, tc.b, got[0], tc.want)
		}
	}
}

func TestMergeNoOverflow(t *testing.T) {
	a := []uint32{math.MaxUint32, math.MaxUint32, math.MaxUint32 - 1}
	b := []uint32{math.MaxUint32, math.MaxUint32 - 2, 1}
	expected := []uint32{math.MaxUint32, math.MaxUint32 - 1, math.MaxUint32 / 2}
	got := Merge(a, b, dvid.Point2d{3, 1})
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("uint32 merge got %v, expected %v", got, expected)
	}

	a16 := []uint16{65535, 65534}
	b16 := []uint16{65533, 65535}
	got16 := Merge(a16, b16, dvid.Point2d{1, 2})
	if got16[0] != 65534 || got16[1] != 65534 {
		t.Errorf("uint16 merge got %v", got16)
	}
}

func TestMergeMatchesWideAverage(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	size := dvid.Point2d{33, 17}
	n := int(size.Prod())
	a := make([]uint16, n)
	b := make([]uint16, n)
	for i := range a {
		a[i] = uint16(r.Intn(65536))
		b[i] = uint16(r.Intn(65536))
		if i%5 == 0 {
			a[i] = 0
		}
		if i%7 == 0 {
			b[i] = 0
		}
	}
	ab := Merge(a, b, size)
	ba := Merge(b, a, size)
	if !reflect.DeepEqual(ab, ba) {
		t.Fatalf("merge is not commutative")
	}
	for i := range a {
		var expected uint16
		switch {
		case b[i] == 0:
			expected = a[i]
		case a[i] == 0:
			expected = b[i]
		default:
			expected = uint16((uint32(a[i]) + uint32(b[i])) / 2)
		}
		if ab[i] != expected {
			t.Fatalf("element %d: merge(%d, %d) = %d, expected %d", i, a[i], b[i], ab[i], expected)
		}
	}
}

func TestMergeIntoAliased(t *testing.T) {
	a := []uint32{10, 0, 6}
	b := []uint32{20, 4, 0}
	MergeInto(a, a, b, dvid.Point2d{3, 1})
	if !reflect.DeepEqual(a, []uint32{15, 4, 6}) {
		t.Errorf("in-place merge got %v", a)
	}
}

func TestMergeVolumes(t *testing.T) {
	size := dvid.Point3d{2, 2, 2}
	a, _ := dvid.MakeVolume([]uint8{1, 2, 3, 4, 5, 6, 7, 8}, size)
	b, _ := dvid.MakeVolume([]uint8{0, 4, 0, 4, 0, 4, 0, 0}, size)
	out, err := MergeVolumes(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out.Data, []uint8{1, 3, 3, 4, 5, 5, 7, 8}) {
		t.Errorf("merged volume got %v", out.Data)
	}
	if out.Size != size {
		t.Errorf("merged volume size %s, expected %s", out.Size, size)
	}

	other := dvid.NewVolume[uint8](dvid.Point3d{2, 2, 1})
	if _, err := MergeVolumes(a, other); err == nil {
		t.Errorf("expected error merging volumes of different size")
	}
}
