package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"slopelight/internal/app"
	"slopelight/internal/terrain"

	"github.com/guptarohit/asciigraph"
)

const usage = `usage: heightmap [-profile cpu|mem] <command> [flags]

commands:
  plot     FILE            draw the raw and smoothed height profile with launcher sites
  angles   FILE            print sin(slope) per LED
  generate -o FILE         write a perlin terrain
  convert  IN OUT          re-encode a heightmap (.json <-> .msgpack)
`

func main() {
	fs := flag.NewFlagSet("heightmap", flag.ExitOnError)
	prof := fs.String("profile", "", "write a cpu or mem profile to the working directory")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	_ = fs.Parse(os.Args[1:])

	stop, err := app.StartProfile(*prof)
	if err != nil {
		log.Fatal(err)
	}
	err = run(fs.Args(), os.Stdout)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}
	switch args[0] {
	case "plot":
		return plot(args[1:], out)
	case "angles":
		return angles(args[1:], out)
	case "generate":
		return generate(args[1:], out)
	case "convert":
		return convert(args[1:], out)
	}
	return fmt.Errorf("unknown command %q\n%s", args[0], usage)
}

func plot(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	height := fs.Int("height", 15, "plot height in rows")
	width := fs.Int("width", 100, "plot width in columns")
	window := fs.Int("window", terrain.DefaultSmoothWindow, "Savitzky-Golay window (odd)")
	order := fs.Int("order", terrain.DefaultSmoothOrder, "Savitzky-Golay polynomial order")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := loadArg(fs)
	if err != nil {
		return err
	}
	raw := path.Heights()
	valleys, peaks, err := terrain.FindExtrema(path, *window, *order)
	if err != nil {
		return err
	}
	series := [][]float64{raw}
	if smooth, err := terrain.SavitzkyGolay(raw, *window, *order); err == nil {
		series = append(series, smooth)
	}
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(*height),
		asciigraph.Width(*width),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("%s: %d LEDs, height (blue) and smoothed (red)", fs.Arg(0), path.Len())),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintf(out, "valleys: %v\npeaks:   %v\n", valleys, peaks)
	return nil
}

func angles(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("angles", flag.ContinueOnError)
	from := fs.Int("from", 0, "first LED index")
	to := fs.Int("to", -1, "last LED index (default: last with a slope)")
	graph := fs.Bool("graph", false, "also plot the values")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := loadArg(fs)
	if err != nil {
		return err
	}
	last := path.Len() - 2
	if *to >= 0 && *to < last {
		last = *to
	}
	if *from < 0 || *from > last {
		return fmt.Errorf("index range [%d,%d] outside [0,%d]", *from, last, path.Len()-2)
	}
	values := make([]float64, 0, last-*from+1)
	for i := *from; i <= last; i++ {
		theta, err := path.TangentAngle(i)
		if err != nil {
			return err
		}
		values = append(values, math.Sin(theta))
		fmt.Fprintf(out, "%4d %+.4f\n", i, math.Sin(theta))
	}
	if *graph && len(values) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(values, asciigraph.Height(10), asciigraph.Caption("sin(slope)")))
	}
	return nil
}

func generate(args []string, out io.Writer) error {
	cfg := terrain.DefaultGenerateConfig()
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.IntVar(&cfg.Count, "n", cfg.Count, "number of LEDs")
	fs.Float64Var(&cfg.Spacing, "spacing", cfg.Spacing, "metres between LEDs")
	fs.Float64Var(&cfg.Amplitude, "amplitude", cfg.Amplitude, "peak height in metres")
	fs.Float64Var(&cfg.Roughness, "roughness", cfg.Roughness, "noise frequency per metre")
	octaves := fs.Int("octaves", int(cfg.Octaves), "noise octaves")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")
	name := fs.String("o", "", "output file (.json or .msgpack)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("generate: -o is required")
	}
	cfg.Octaves = int32(*octaves)
	vs, err := terrain.Generate(cfg)
	if err != nil {
		return err
	}
	if err := terrain.Save(*name, vs); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d LEDs to %s\n", len(vs), *name)
	return nil
}

func convert(args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("convert: want IN OUT, got %s", strings.Join(args, " "))
	}
	path, err := terrain.Load(args[0])
	if err != nil {
		return err
	}
	if err := terrain.Save(args[1], path.Vertices()); err != nil {
		return err
	}
	fmt.Fprintf(out, "converted %d LEDs: %s -> %s\n", path.Len(), args[0], args[1])
	return nil
}

func loadArg(fs *flag.FlagSet) (*terrain.Path, error) {
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("%s: want exactly one heightmap file", fs.Name())
	}
	return terrain.Load(fs.Arg(0))
}
