// Command minixls lists a directory (or describes a single entry) inside a
// MINIX v3 filesystem image, optionally nested behind one or two levels of
// DOS partition table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/go-minix/minixfs"
	"github.com/go-minix/minixfs/minix"
)

const usage = `minixls - list a directory inside a MINIX v3 image

Usage:
  minixls [-p N] [-s N] [-v] <imagefile> [path]

Flags:
  -p N   primary DOS partition to use (0-3); default: none (bare filesystem)
  -s N   sub-partition within -p's nested partition table (0-3)
  -v     verbose debug logging to stderr
  -h     show this help message

path defaults to /.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("minixls", flag.ContinueOnError)
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
	if len(rest) < 1 {
		fs.Usage()
		return 1
	}
	imagePath := rest[0]
	target := "/"
	if len(rest) > 1 {
		target = rest[1]
	}

	opts := buildOptions(*partition, *subpartition, *verbose)
	img, err := minixfs.Open(imagePath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minixls: %s\n", err)
		return 1
	}
	defer img.Close()

	isDir, self, entries, err := img.ListDirectory(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minixls: %s\n", err)
		return 1
	}
	if !isDir {
		printEntry(self)
		return 0
	}

	fmt.Printf("%s:\n", target)
	for _, e := range entries {
		printEntry(e)
	}
	return 0
}

func printEntry(e minixfs.EntryInfo) {
	fmt.Printf("%s %9d %s\n", e.ModeString, e.Size, e.Name)
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
