package downres

import (
	"fmt"
	"sync"

	"github.com/DmitriyVTitov/size"
	"github.com/dustin/go-humanize"

	"github.com/janelia-flyem/labelpyramid/datatype/common/labels"
	"github.com/janelia-flyem/labelpyramid/dvid"
)

// Mode selects how one pyramid level is collapsed from the level below.
type Mode uint8

const (
	Anisotropic Mode = iota
	Isotropic
)

// Factor returns the per-axis collapse factor for the mode.
func (m Mode) Factor() dvid.Point3d {
	if m == Isotropic {
		return IsotropicFactor
	}
	return AnisotropicFactor
}

func (m Mode) String() string {
	switch m {
	case Anisotropic:
		return "anisotropic"
	case Isotropic:
		return "isotropic"
	default:
		return fmt.Sprintf("mode %d", uint8(m))
	}
}

// DefaultModes returns the modes for numLevels downres steps where the first
// numAnisotropic steps only collapse X and Y, as is usual for volumes with coarse Z
// sampling, and the rest collapse all axes.
func DefaultModes(numLevels, numAnisotropic int) []Mode {
	modes := make([]Mode, numLevels)
	for i := range modes {
		if i >= numAnisotropic {
			modes[i] = Isotropic
		}
	}
	return modes
}

// Tile is a source volume destined for the region of a coarser canvas starting at
// Offset, given in canvas voxels.
type Tile[T labels.Label] struct {
	Volume dvid.Volume[T]
	Offset dvid.Point3d
}

// region returns the canvas bounds [min, max) written by the tile.
func (t Tile[T]) region(factor dvid.Point3d) (min, max dvid.Point3d) {
	return t.Offset, t.Offset.Add(t.Volume.Size.Div(factor))
}

func overlaps(min1, max1, min2, max2 dvid.Point3d) bool {
	for i := 0; i < 3; i++ {
		if max1[i] <= min2[i] || max2[i] <= min1[i] {
			return false
		}
	}
	return true
}

// AssembleCanvas downsamples each tile into a new zeroed canvas of the given size.
// Tiles must fit within the canvas and must not write overlapping regions.  Tiles are
// processed concurrently by up to b.Workers goroutines.
func (b Builder[T]) AssembleCanvas(tiles []Tile[T], canvasSize dvid.Point3d, mode Mode) (dvid.Volume[T], error) {
	if !canvasSize.Positive() {
		return dvid.Volume[T]{}, fmt.Errorf("canvas size %s must be positive", canvasSize)
	}
	canvas := dvid.NewVolume[T](canvasSize)
	factor := mode.Factor()
	for i, tile := range tiles {
		if err := CheckTile(tile.Volume, canvas, tile.Offset, factor); err != nil {
			return dvid.Volume[T]{}, fmt.Errorf("tile %d: %v", i, err)
		}
		min1, max1 := tile.region(factor)
		for j := 0; j < i; j++ {
			min2, max2 := tiles[j].region(factor)
			if overlaps(min1, max1, min2, max2) {
				return dvid.Volume[T]{}, fmt.Errorf("tile %d at %s overlaps tile %d at %s", i, tile.Offset, j, tiles[j].Offset)
			}
		}
	}

	timedLog := dvid.NewTimeLog()
	numWorkers := b.Workers
	if numWorkers <= 0 {
		numWorkers = dvid.NumCPU
	}
	if numWorkers > len(tiles) {
		numWorkers = len(tiles)
	}

	// Parallelism is across tiles, so each tile is built on a single goroutine.
	tileBuilder := Builder[T]{Vote: b.Vote, Workers: 1}
	if numWorkers <= 1 {
		tileBuilder.Workers = b.Workers
	}

	tileCh := make(chan Tile[T], len(tiles))
	wg := new(sync.WaitGroup)
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tileCh {
				tileBuilder.build(tile.Volume, canvas, factor, tile.Offset)
			}
		}()
	}
	for _, tile := range tiles {
		tileCh <- tile
	}
	close(tileCh)
	wg.Wait()

	timedLog.Debugf("Assembled %d %s tiles into canvas %s", len(tiles), mode, canvasSize)
	return canvas, nil
}

// Pyramid holds successive levels of a label volume.  Levels[0] is the source and
// Levels[i+1] was collapsed from Levels[i] using Modes[i].
type Pyramid[T labels.Label] struct {
	Levels []dvid.Volume[T]
	Modes  []Mode
}

// NumBytes returns the approximate memory held by all levels.
func (p *Pyramid[T]) NumBytes() uint64 {
	if p == nil {
		return 0
	}
	return uint64(size.Of(p.Levels))
}

// BuildPyramid computes one level per mode, each collapsed from the previous level.
// The source becomes level 0 and is not copied.
func (b Builder[T]) BuildPyramid(src dvid.Volume[T], modes []Mode) (*Pyramid[T], error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	timedLog := dvid.NewTimeLog()
	p := &Pyramid[T]{
		Levels: make([]dvid.Volume[T], 1, len(modes)+1),
		Modes:  modes,
	}
	p.Levels[0] = src
	for scale, mode := range modes {
		hires := p.Levels[scale]
		factor := mode.Factor()
		if rem := hires.Size.Mod(factor); rem != (dvid.Point3d{}) {
			return nil, fmt.Errorf("can't compute %s scale %d from size %s: not divisible by %s",
				mode, scale+1, hires.Size, factor)
		}
		lores := dvid.NewVolume[T](hires.Size.Div(factor))
		levelLog := dvid.NewTimeLog()
		b.Generalized(hires, factor, lores)
		p.Levels = append(p.Levels, lores)
		levelLog.Infof("Computed %s scale %d, %s -> %s (%s)", mode, scale+1, hires.Size, lores.Size,
			humanize.Bytes(lores.NumBytes()))
	}
	timedLog.Infof("Built %d-level label pyramid holding %s", len(p.Levels), humanize.Bytes(p.NumBytes()))
	return p, nil
}
