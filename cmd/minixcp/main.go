// Command minixcp extracts a regular file out of a MINIX v3 filesystem
// image to standard output or a destination file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/go-minix/minixfs"
	"github.com/go-minix/minixfs/minix"
)

const usage = `minixcp - extract a file from a MINIX v3 image

Usage:
  minixcp [-p N] [-s N] [-v] <imagefile> <srcpath> [dstpath]

Flags:
  -p N   primary DOS partition to use (0-3); default: none (bare filesystem)
  -s N   sub-partition within -p's nested partition table (0-3)
  -v     verbose debug logging to stderr
  -h     show this help message

dstpath defaults to standard output.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("minixcp", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		partition    = fs.Int("p", -1, "primary partition number (0-3)")
		subpartition = fs.Int("s", -1, "sub-partition number (0-3)")
		verbose      = fs.Bool("v", false, "verbose debug logging")
		help         = fs.Bool("h", false, "show help")
	)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *help {
		fmt.Print(usage)
		return 0
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return 1
	}
	imagePath := rest[0]
	srcPath := rest[1]

	var sink *os.File = os.Stdout
	if len(rest) > 2 {
		f, err := os.Create(rest[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "minixcp: %s\n", err)
			return 1
		}
		defer f.Close()
		sink = f
	}

	opts := buildOptions(*partition, *subpartition, *verbose)
	img, err := minixfs.Open(imagePath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minixcp: %s\n", err)
		return 1
	}
	defer img.Close()

	if err := img.StreamFile(srcPath, sink); err != nil {
		fmt.Fprintf(os.Stderr, "minixcp: %s\n", err)
		return 1
	}
	return 0
}

func buildOptions(partition, subpartition int, verbose bool) []minixfs.Option {
	var opts []minixfs.Option
	if partition >= 0 {
		opts = append(opts, minix.WithPartition(partition))
	}
	if subpartition >= 0 {
		opts = append(opts, minix.WithSubPartition(subpartition))
	}
	if verbose {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
		opts = append(opts, minix.WithLogger(logger))
	}
	return opts
}
