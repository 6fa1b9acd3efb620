// Command sobol prints, evaluates and plots scrambled Sobol points.
//
// Usage:
//
//	sobol sample  [-n 8] [-dims 0-3] [-seed 0] [-shuffle]
//	sobol quality [-n 1024] [-pairs 8] [-seed 0] [-shuffle] [-format text|json]
//	sobol plot    [-n 1024] [-x 0] [-y 1] [-size 256] [-seed 0] [-o out.pbm]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/sobol"
	"github.com/hupe1980/sobol/quality"
)

var errUsage = errors.New("usage: sobol <sample|quality|plot> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "sobol:", err)
		}
		os.Exit(2)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "sample":
		return runSample(args[1:], stdout, stderr)
	case "quality":
		return runQuality(ctx, args[1:], stdout, stderr)
	case "plot":
		return runPlot(args[1:], stdout, stderr)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	seed    uint
	shuffle bool
	verbose bool
	json    bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.UintVar(&c.seed, "seed", 0, "scramble seed")
	fs.BoolVar(&c.shuffle, "shuffle", false, "shuffle the sample order")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
	fs.BoolVar(&c.json, "json", false, "log as JSON")
}

func (c *commonFlags) logger(w io.Writer) *quality.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	if c.json {
		return quality.NewJSONLogger(w, level)
	}
	return quality.NewTextLogger(w, level)
}

func (c *commonFlags) sampler() func(index, dimension, seed uint32) float32 {
	if c.shuffle {
		return sobol.ShuffledSample
	}
	return sobol.Sample
}

func runSample(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c commonFlags
	c.register(fs)
	n := fs.Int("n", 8, "number of points")
	dimsFlag := fs.String("dims", "0-3", "dimensions, as a range (0-3) or a list (0,5,9)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dims, err := parseDims(*dimsFlag)
	if err != nil {
		return err
	}
	if *n <= 0 || *n > sobol.MaxSamples {
		return fmt.Errorf("-n must be in [1, %d], got %d", sobol.MaxSamples, *n)
	}

	logger := c.logger(stderr)
	logger.Debug("sampling", "points", *n, "dimensions", len(dims), "seed", c.seed, "shuffle", c.shuffle, "backend", sobol.Backend())

	sample := c.sampler()
	seed := uint32(c.seed)

	var sb strings.Builder
	for i := range *n {
		sb.Reset()
		for j, d := range dims {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(float64(sample(uint32(i), d, seed)), 'f', 6, 32))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(stdout, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func runQuality(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("quality", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c commonFlags
	c.register(fs)
	n := fs.Int("n", 1024, "number of points per pair (power of two)")
	first := fs.Uint("first", 0, "first dimension")
	pairs := fs.Int("pairs", 8, "number of consecutive dimension pairs")
	workers := fs.Int("workers", 0, "parallel evaluations (0 = GOMAXPROCS)")
	format := fs.String("format", "text", "report format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reports, err := quality.Evaluate(ctx,
		quality.WithSamples(*n),
		quality.WithPairs(quality.ConsecutivePairs(uint32(*first), *pairs)...),
		quality.WithSeed(uint32(c.seed)),
		quality.WithShuffle(c.shuffle),
		quality.WithConcurrency(*workers),
		quality.WithLogger(c.logger(stderr)),
	)
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "text":
		return writeReportText(stdout, reports)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func writeReportText(w io.Writer, reports []quality.PairReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "x\ty\tsamples\tsobol\trandom\tratio\tnet\t")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6f\t%.6f\t%.1f\t%t\t\n",
			r.Pair.X, r.Pair.Y, r.Samples, r.Sobol, r.Random, r.Ratio(), r.Net)
	}
	return tw.Flush()
}

func runPlot(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c commonFlags
	c.register(fs)
	n := fs.Int("n", 1024, "number of points")
	x := fs.Uint("x", 0, "dimension on the x axis")
	y := fs.Uint("y", 1, "dimension on the y axis")
	size := fs.Int("size", 256, "image width and height in pixels")
	out := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *n <= 0 || *n > sobol.MaxSamples {
		return fmt.Errorf("-n must be in [1, %d], got %d", sobol.MaxSamples, *n)
	}
	if *x >= sobol.NumDimensions || *y >= sobol.NumDimensions {
		return fmt.Errorf("dimensions must be < %d", sobol.NumDimensions)
	}

	sample := c.sampler()
	seed := uint32(c.seed)

	xs := make([]float32, *n)
	ys := make([]float32, *n)
	for i := range *n {
		xs[i] = sample(uint32(i), uint32(*x), seed)
		ys[i] = sample(uint32(i), uint32(*y), seed)
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := quality.WritePBM(w, xs, ys, *size, *size); err != nil {
		return err
	}

	c.logger(stderr).Debug("plot written", "points", *n, "x", *x, "y", *y, "size", *size, "output", *out)
	return nil
}

// parseDims accepts "a-b" (inclusive) or a comma separated list.
func parseDims(s string) ([]uint32, error) {
	if lo, hi, ok := strings.Cut(s, "-"); ok {
		a, err := parseDim(lo)
		if err != nil {
			return nil, err
		}
		b, err := parseDim(hi)
		if err != nil {
			return nil, err
		}
		if b < a {
			return nil, fmt.Errorf("invalid dimension range %q", s)
		}
		dims := make([]uint32, 0, b-a+1)
		for d := a; d <= b; d++ {
			dims = append(dims, d)
		}
		return dims, nil
	}

	var dims []uint32
	for _, f := range strings.Split(s, ",") {
		d, err := parseDim(f)
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return dims, nil
}

func parseDim(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	if v >= sobol.NumDimensions {
		return 0, fmt.Errorf("dimension %d out of range [0, %d)", v, sobol.NumDimensions)
	}
	return uint32(v), nil
}
