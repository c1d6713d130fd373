package downres

import (
	"reflect"
	"testing"

	"github.com/janelia-flyem/labelpyramid/dvid"
)

func TestDefaultModes(t *testing.T) {
	modes := DefaultModes(5, 3)
	expected := []Mode{Anisotropic, Anisotropic, Anisotropic, Isotropic, Isotropic}
	if !reflect.DeepEqual(modes, expected) {
		t.Errorf("default modes got %v, expected %v", modes, expected)
	}
	if len(DefaultModes(0, 3)) != 0 {
		t.Errorf("expected no modes for zero levels")
	}
	if Isotropic.String() != "isotropic" || Mode(9).String() != "mode 9" {
		t.Errorf("unexpected mode names %q, %q", Isotropic, Mode(9))
	}
}

func TestBuildPyramid(t *testing.T) {
	src := randomLabels[uint64](dvid.Point3d{32, 32, 8}, 5)
	b := Builder[uint64]{Workers: 4}
	p, err := b.BuildPyramid(src, DefaultModes(4, 2))
	if err != nil {
		t.Fatalf("build pyramid: %v", err)
	}
	sizes := []dvid.Point3d{{32, 32, 8}, {16, 16, 8}, {8, 8, 8}, {4, 4, 4}, {2, 2, 2}}
	if len(p.Levels) != len(sizes) {
		t.Fatalf("expected %d levels, got %d", len(sizes), len(p.Levels))
	}
	for i, sz := range sizes {
		if p.Levels[i].Size != sz {
			t.Errorf("level %d size %s, expected %s", i, p.Levels[i].Size, sz)
		}
		if err := p.Levels[i].Validate(); err != nil {
			t.Errorf("level %d: %v", i, err)
		}
	}

	// Each level must equal a direct build from the level below.
	for i, mode := range p.Modes {
		expected := dvid.NewVolume[uint64](p.Levels[i+1].Size)
		if mode == Isotropic {
			BuildTileIsotropic(p.Levels[i], expected, dvid.Point3d{})
		} else {
			BuildTileAnisotropic(p.Levels[i], expected, dvid.Point3d{})
		}
		if !reflect.DeepEqual(expected.Data, p.Levels[i+1].Data) {
			t.Errorf("level %d does not match direct %s build", i+1, mode)
		}
	}
	if p.NumBytes() < uint64(len(src.Data)*8) {
		t.Errorf("pyramid reports %d bytes, less than its source", p.NumBytes())
	}
}

func TestBuildPyramidIndivisible(t *testing.T) {
	src := dvid.NewVolume[uint32](dvid.Point3d{8, 8, 3})
	if _, err := (Builder[uint32]{}).BuildPyramid(src, []Mode{Anisotropic, Isotropic}); err == nil {
		t.Errorf("expected error for odd Z extent at isotropic level")
	}
	bad := dvid.Volume[uint32]{Data: make([]uint32, 2), Size: dvid.Point3d{8, 8, 2}}
	if _, err := (Builder[uint32]{}).BuildPyramid(bad, []Mode{Anisotropic}); err == nil {
		t.Errorf("expected error for invalid source volume")
	}
}
