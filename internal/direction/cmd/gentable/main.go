// Package main generates the compiled direction number table from a
// Joe-Kuo style text file. Plain, zstd (.zst) and lz4 (.lz4) inputs are
// accepted.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/sobol/internal/direction"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	input   = flag.String("in", "data/directions-256.txt", "direction number file (.txt, .zst or .lz4)")
	output  = flag.String("o", "", "output Go file (default: stdout)")
	dims    = flag.Int("dims", direction.NumDimensions, "number of dimensions to generate (multiple of 4)")
	pkg     = flag.String("pkg", "direction", "package name of the generated file")
	verbose = flag.Bool("v", false, "verbose output")
)

func init() {
	flag.StringVar(output, "out", "", "alias for -o")
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := generate(logger); err != nil {
		logger.Error("generation failed", "input", *input, "error", err)
		os.Exit(1)
	}
}

func generate(logger *slog.Logger) error {
	logger.Debug("reading direction numbers", "input", *input, "dimensions", *dims)

	f, err := os.Open(*input)
	if err != nil {
		return err
	}
	defer f.Close()

	if *output == "" {
		return run(f, *input, os.Stdout)
	}

	var buf bytes.Buffer
	if err := run(f, *input, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		return err
	}

	logger.Info("generated direction table", "output", *output, "dimensions", *dims, "bytes", buf.Len())
	return nil
}

// run renders the table for the direction numbers read from r. name is
// the input file name; its extension selects the decompressor.
func run(r io.Reader, name string, w io.Writer) error {
	dr, closeFn, err := openDecompressed(r, name)
	if err != nil {
		return err
	}
	defer closeFn()

	entries, err := direction.Parse(dr)
	if err != nil {
		return err
	}

	sets, err := direction.Build(entries, *dims)
	if err != nil {
		return err
	}

	src, err := render(sets, *pkg, sourceName(name))
	if err != nil {
		return err
	}

	_, err = w.Write(src)
	return err
}

// sourceName is the base name of the input without a compression suffix,
// so compressed and plain inputs render the same header.
func sourceName(name string) string {
	base := filepath.Base(name)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".zst", ".zstd", ".lz4":
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

// openDecompressed wraps r in a decoder chosen by the file extension.
func openDecompressed(r io.Reader, name string) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		return dec, dec.Close, nil
	case ".lz4":
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

func render(sets []direction.Set, pkgName, source string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by gentable from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	buf.WriteString("// table holds the bit-reversed direction numbers, grouped by set.\n")
	buf.WriteString("var table = [...]Set{\n")
	for i, set := range sets {
		fmt.Fprintf(&buf, "\t{ // dimensions %d-%d\n", i*direction.Lanes, i*direction.Lanes+direction.Lanes-1)
		for _, row := range set {
			fmt.Fprintf(&buf, "\t\t{0x%04x, 0x%04x, 0x%04x, 0x%04x},\n", row[0], row[1], row[2], row[3])
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
