package downres

import (
	"reflect"
	"testing"

	"github.com/janelia-flyem/labelpyramid/dvid"
)

func TestZoomOut(t *testing.T) {
	src, err := dvid.MakeVolume([]uint16{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}, dvid.Point3d{4, 4, 1})
	if err != nil {
		t.Fatal(err)
	}
	dst := dvid.NewVolume[uint16](dvid.Point3d{2, 2, 1})
	if err := ZoomOut(src, dst, 1); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(dst.Data, []uint16{1, 3, 9, 11}) {
		t.Errorf("zoom out got %v", dst.Data)
	}
	if err := ZoomOut(src, dst, 2); err == nil {
		t.Errorf("expected size mismatch error")
	}
}

func TestZoomInOutRoundTrip(t *testing.T) {
	src, err := dvid.MakeVolume([]uint32{
		1, 2,
		3, 4,

		5, 6,
		7, 8,
	}, dvid.Point3d{2, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	big := dvid.NewVolume[uint32](dvid.Point3d{8, 8, 2})
	if err := ZoomIn(src, big, 2); err != nil {
		t.Fatal(err)
	}
	if big.Value(3, 3, 0) != 1 || big.Value(4, 0, 0) != 2 || big.Value(7, 7, 1) != 8 || big.Value(0, 4, 1) != 7 {
		t.Errorf("zoom in replicated wrong voxels: %v", big.Data)
	}
	back := dvid.NewVolume[uint32](dvid.Point3d{2, 2, 2})
	if err := ZoomOut(big, back, 2); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back.Data, src.Data) {
		t.Errorf("zoom in then out got %v, expected %v", back.Data, src.Data)
	}
	if err := ZoomIn(src, big, 20); err == nil {
		t.Errorf("expected error for huge zoom level")
	}
}

func TestZoomRejectsShortData(t *testing.T) {
	full := dvid.NewVolume[uint8](dvid.Point3d{4, 4, 1})
	short := dvid.Volume[uint8]{Data: make([]uint8, 3), Size: dvid.Point3d{2, 2, 1}}
	if err := ZoomOut(full, short, 1); err == nil {
		t.Errorf("expected error zooming out into a short destination")
	}
	if err := ZoomIn(short, full, 1); err == nil {
		t.Errorf("expected error zooming in from a short source")
	}
	truncated := dvid.Volume[uint8]{Data: full.Data[:10], Size: full.Size}
	small := dvid.NewVolume[uint8](dvid.Point3d{2, 2, 1})
	if err := ZoomOut(truncated, small, 1); err == nil {
		t.Errorf("expected error zooming out from a short source")
	}
	if err := ZoomIn(small, truncated, 1); err == nil {
		t.Errorf("expected error zooming in into a short destination")
	}
}
