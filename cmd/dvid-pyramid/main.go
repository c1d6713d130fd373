package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/janelia-flyem/labelpyramid/dvid"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

var showHelp bool

const helpMessage = `
dvid-pyramid builds lower-resolution levels of label volumes and merges overlapping
intensity or label blocks.  Volumes are packed little-endian arrays in Z, Y, then X
order.  Files ending in .gz or .zst are compressed with gzip or zstandard.

Usage: dvid-pyramid [-h] <command> [options] <args>

Commands:

	downres [options] <in.raw> <outprefix>

		Builds each scale from the one below it and writes <outprefix>_s<N>.raw for
		N = 1 .. levels, with a .gz or .zst suffix if compressed.

		-size       =string   Dimensions ("NX,NY,NZ") of the input volume (required).
		-type       =string   Label type, "uint64" (default) or "uint32".
		-levels     =int      Number of scales to compute, overriding the config file.
		-vote       =string   Vote rule, "consensus" or "legacy", overriding the config file.
		-workers    =int      Goroutines used per scale, overriding the config file.
		-compress   =string   Compress each scale with "gz" or "zst".
		-config     =string   TOML or YAML configuration file.

	merge [options] <a.raw> <b.raw> <out.raw>

		Merges two equally sized arrays: background in one takes the other value,
		and where both are nonzero the result is their average.

		-size       =string   Dimensions ("NX,NY") of the arrays, where NY may count
		                      rows over all Z planes (required).
		-type       =string   Element type: "uint8" (default), "uint16", "uint32" or "float32".
		-config     =string   TOML or YAML configuration file, used for logging.

	about

		Prints the version and build information.

	-h, -help       (flag)    Show help message
`

func main() {
	flag.BoolVar(&showHelp, "h", false, "Show help message")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.Usage = func() {
		fmt.Print(helpMessage)
	}
	flag.Parse()

	if showHelp || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	var err error
	args := flag.Args()
	switch cmd := strings.ToLower(args[0]); cmd {
	case "downres":
		err = downresCommand(args[1:])
	case "merge":
		err = mergeCommand(args[1:])
	case "about":
		fmt.Printf("dvid-pyramid %s (%s, %s/%s, %d CPUs)\n", version, runtime.Version(),
			runtime.GOOS, runtime.GOARCH, dvid.NumCPU)
	default:
		err = fmt.Errorf("unknown command %q, use -h for help", cmd)
	}
	dvid.Shutdown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
