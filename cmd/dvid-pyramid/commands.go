package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/janelia-flyem/labelpyramid/config"
	"github.com/janelia-flyem/labelpyramid/datatype/common/downres"
	"github.com/janelia-flyem/labelpyramid/datatype/common/labels"
	"github.com/janelia-flyem/labelpyramid/datatype/imageblk"
	"github.com/janelia-flyem/labelpyramid/dvid"
)

// newFlagSet returns a command flag set that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// loadConfig reads the optional config file and starts logging.
func loadConfig(filename string) (*config.Config, error) {
	c, err := config.Load(filename)
	if err != nil {
		return nil, err
	}
	if err := c.Logging.SetLogger(); err != nil {
		return nil, err
	}
	return c, nil
}

type downresArgs struct {
	input, outPrefix string
	outExt           string
	size             dvid.Point3d
	cfg              *config.Config
}

func downresCommand(args []string) error {
	fs := newFlagSet("downres")
	sizeStr := fs.String("size", "", "")
	typeStr := fs.String("type", "uint64", "")
	levels := fs.Int("levels", 0, "")
	vote := fs.String("vote", "", "")
	workers := fs.Int("workers", -1, "")
	compress := fs.String("compress", "", "")
	cfgFile := fs.String("config", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("downres needs <in.raw> <outprefix>, got %d arguments", fs.NArg())
	}
	size, err := dvid.StringToPoint3d(*sizeStr, ",")
	if err != nil {
		return fmt.Errorf("could not interpret volume size, should be -size=NX,NY,NZ: %v", err)
	}
	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	if *levels > 0 {
		cfg.Pyramid.Levels = *levels
	}
	if *vote != "" {
		cfg.Pyramid.Vote = *vote
	}
	if *workers >= 0 {
		cfg.Pyramid.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	da := downresArgs{input: fs.Arg(0), outPrefix: fs.Arg(1), outExt: ".raw", size: size, cfg: cfg}
	switch *compress {
	case "":
	case "gz", "zst":
		da.outExt += "." + *compress
	default:
		return fmt.Errorf("unsupported compression %q, expected gz or zst", *compress)
	}
	switch *typeStr {
	case "uint64":
		return downresFile[uint64](da)
	case "uint32":
		return downresFile[uint32](da)
	default:
		return fmt.Errorf("unsupported label type %q, expected uint32 or uint64", *typeStr)
	}
}

func downresFile[T labels.Label](da downresArgs) error {
	if !da.size.Positive() {
		return fmt.Errorf("volume size %s must be positive", da.size)
	}
	data, err := readRaw[T](da.input, da.size.Prod())
	if err != nil {
		return err
	}
	src, err := dvid.MakeVolume(data, da.size)
	if err != nil {
		return err
	}
	vote, err := labels.VoteRule[T](da.cfg.Pyramid.Vote)
	if err != nil {
		return err
	}
	b := downres.Builder[T]{Vote: vote, Workers: da.cfg.Pyramid.Workers}
	dvid.Infof("Building %d scales from %s using %s vote\n", da.cfg.Pyramid.Levels, src, da.cfg.Pyramid.Vote)
	p, err := b.BuildPyramid(src, da.cfg.Modes())
	if err != nil {
		return err
	}
	for scale := 1; scale < len(p.Levels); scale++ {
		filename := fmt.Sprintf("%s_s%d%s", da.outPrefix, scale, da.outExt)
		if err := writeRaw(filename, p.Levels[scale].Data); err != nil {
			return err
		}
		dvid.Infof("Wrote scale %d, size %s, to %s\n", scale, p.Levels[scale].Size, filename)
	}
	return nil
}

type mergeArgs struct {
	a, b, out string
	size      dvid.Point2d
}

func mergeCommand(args []string) error {
	fs := newFlagSet("merge")
	sizeStr := fs.String("size", "", "")
	typeStr := fs.String("type", "uint8", "")
	cfgFile := fs.String("config", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("merge needs <a.raw> <b.raw> <out.raw>, got %d arguments", fs.NArg())
	}
	size, err := dvid.StringToPoint2d(*sizeStr, ",")
	if err != nil {
		return fmt.Errorf("could not interpret array size, should be -size=NX,NY: %v", err)
	}
	if size[0] <= 0 || size[1] <= 0 {
		return fmt.Errorf("array size %s must be positive", size)
	}
	if _, err := loadConfig(*cfgFile); err != nil {
		return err
	}

	ma := mergeArgs{a: fs.Arg(0), b: fs.Arg(1), out: fs.Arg(2), size: size}
	switch *typeStr {
	case "uint8":
		return mergeFiles[uint8](ma)
	case "uint16":
		return mergeFiles[uint16](ma)
	case "uint32":
		return mergeFiles[uint32](ma)
	case "float32":
		return mergeFiles[float32](ma)
	default:
		return fmt.Errorf("unsupported element type %q, expected uint8, uint16, uint32 or float32", *typeStr)
	}
}

func mergeFiles[T imageblk.Intensity](ma mergeArgs) error {
	timedLog := dvid.NewTimeLog()
	a, err := readRaw[T](ma.a, ma.size.Prod())
	if err != nil {
		return err
	}
	b, err := readRaw[T](ma.b, ma.size.Prod())
	if err != nil {
		return err
	}
	imageblk.MergeInto(a, a, b, ma.size)
	if err := writeRaw(ma.out, a); err != nil {
		return err
	}
	timedLog.Infof("Merged %s and %s of size %s into %s\n", ma.a, ma.b, ma.size, ma.out)
	return nil
}
