package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	poisson "github.com/yyyoichi/poisson_blend"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

type config struct {
	target, source, output, mask string
	mx, my                       uint
	gamma                        float64
	srgb                         bool
	threshold                    float64
	serial                       bool
	verbose                      bool
}

var required = []string{"target", "source", "output", "mask", "mx", "my"}

func parse(args []string, stderr io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("poissonblend", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.target, "target", "", "target image")
	fs.StringVar(&cfg.source, "source", "", "source image")
	fs.StringVar(&cfg.output, "output", "", "output image")
	fs.StringVar(&cfg.mask, "mask", "", "mask image")
	fs.UintVar(&cfg.mx, "mx", 0, "blending target x-position")
	fs.UintVar(&cfg.my, "my", 0, "blending target y-position")
	fs.Float64Var(&cfg.gamma, "gamma", 2.2, "gamma correction constant")
	fs.BoolVar(&cfg.srgb, "srgb", false, "use the sRGB transfer curve instead of -gamma")
	fs.Float64Var(&cfg.threshold, "threshold", 0.99, "red level at which a mask pixel is blended")
	fs.BoolVar(&cfg.serial, "serial", false, "solve color channels one after another")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		usage(stderr, fs)
		return nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range required {
		if !set[name] {
			usage(stderr, fs)
			return nil, fmt.Errorf("could not find command-line parameter -%s", name)
		}
	}
	return &cfg, nil
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Invalid command line arguments specified!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE: poissonblend [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "NOTE: it is not allowed to blend an image to the exact borders of the image.")
	fmt.Fprintln(w, "      i.e., you can't set something like mx=0, my=0")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

func (cfg *config) options() []poisson.Option {
	opts := []poisson.Option{
		poisson.WithGamma(cfg.gamma),
		poisson.WithThreshold(cfg.threshold),
	}
	if cfg.srgb {
		opts = append(opts, poisson.WithSRGB())
	}
	if cfg.serial {
		opts = append(opts, poisson.WithSerialSolve())
	}
	return opts
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := parse(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	poisson.SetLogger(logger)

	b, err := poisson.New(cfg.options()...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var images [3]*poisson.Image
	for i, path := range []string{cfg.target, cfg.mask, cfg.source} {
		img, err := b.Load(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		images[i] = img
	}
	target, maskImg, source := images[0], images[1], images[2]

	out, err := b.Blend(ctx, maskImg, source, target, int(cfg.mx), int(cfg.my))
	switch {
	case errors.Is(err, poisson.ErrInvalidPlacement):
		fmt.Fprintf(stderr, "The specified source image does not fit in the target image: %v\n", err)
		return 1
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := out.Save(cfg.output); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Info("blended", "output", cfg.output, "width", out.Width, "height", out.Height)
	return 0
}
