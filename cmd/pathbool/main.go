package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/geom"
	"github.com/tdewolff/geom/orbconv"
)

type Combine struct {
	Op       string  `short:"p" default:"union" desc:"Boolean operation: union, intersect, subtract, subtract-reverse or xor"`
	Config   string  `short:"c" desc:"Tolerance configuration file in TOML"`
	Verbose  bool    `short:"v" desc:"Log debug events to stderr"`
	Format   string  `short:"f" default:"svg" desc:"Output format: svg or geojson"`
	Flatness float64 `default:"0.01" desc:"Flattening tolerance of curves for GeoJSON output"`
	A        string  `index:"0" desc:"SVG path data of shape A, or @filename"`
	B        string  `index:"1" desc:"SVG path data of shape B, or @filename"`
}

type Crossings struct {
	Config  string `short:"c" desc:"Tolerance configuration file in TOML"`
	Verbose bool   `short:"v" desc:"Log debug events to stderr"`
	A       string `index:"0" desc:"SVG path data of path A, or @filename"`
	B       string `index:"1" desc:"SVG path data of path B, or @filename"`
}

type Tolerance struct {
	Config string `short:"c" desc:"Tolerance configuration file in TOML"`
}

func main() {
	root := argp.NewCmd(&Combine{}, "Boolean operations on shapes bounded by lines, Bézier curves and elliptical arcs")
	root.AddCmd(&Crossings{}, "crossings", "List the crossings between two paths")
	root.AddCmd(&Tolerance{}, "tolerance", "Write the tolerance configuration in TOML")
	root.Parse()
	root.PrintHelp()
}

func newEngine(config string, verbose bool) (*geom.Engine, error) {
	tol := geom.DefaultTolerance
	if config != "" {
		var err error
		if tol, err = geom.LoadToleranceFile(config); err != nil {
			return nil, err
		}
	}

	var logger *slog.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return geom.NewEngine(tol, logger), nil
}

func readPathData(arg string) (string, error) {
	if filename, ok := strings.CutPrefix(arg, "@"); ok {
		b, err := os.ReadFile(filename)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return arg, nil
}

func parseShape(arg string) (geom.Shape, error) {
	data, err := readPathData(arg)
	if err != nil {
		return nil, err
	}
	return geom.ParseSVGShape(data)
}

func (cmd *Combine) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	op, err := geom.ParseOp(cmd.Op)
	if err != nil {
		return err
	}
	engine, err := newEngine(cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}

	a, err := parseShape(cmd.A)
	if err != nil {
		return fmt.Errorf("shape A: %w", err)
	}
	b, err := parseShape(cmd.B)
	if err != nil {
		return fmt.Errorf("shape B: %w", err)
	}

	s := engine.Combine(op, a, b)
	switch cmd.Format {
	case "svg":
		fmt.Println(s.SVG())
	case "geojson":
		if cmd.Flatness <= 0.0 {
			return fmt.Errorf("flatness must be positive")
		}
		js, err := geojson.NewGeometry(orbconv.MultiPolygon(s, cmd.Flatness)).MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(js))
	default:
		return fmt.Errorf("unknown output format %q", cmd.Format)
	}
	return nil
}

func (cmd *Crossings) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	engine, err := newEngine(cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}

	var ps [2]*geom.Path
	for i, arg := range []string{cmd.A, cmd.B} {
		data, err := readPathData(arg)
		if err != nil {
			return err
		}
		paths, err := geom.ParseSVGPath(data)
		if err != nil {
			return err
		} else if len(paths) != 1 {
			return fmt.Errorf("path %c: must have exactly one subpath", 'A'+i)
		}
		ps[i] = paths[0]
	}

	for _, c := range engine.Crossings(ps[0], ps[1]) {
		dir := "enter"
		if c.Dir {
			dir = "leave"
		}
		fmt.Printf("%v\t%.8g\t%.8g\t%s\n", ps[0].PointAt(c.TA), c.TA, c.TB, dir)
	}
	return nil
}

func (cmd *Tolerance) Run() error {
	tol := geom.DefaultTolerance
	if cmd.Config != "" {
		var err error
		if tol, err = geom.LoadToleranceFile(cmd.Config); err != nil {
			return err
		}
	}
	return geom.WriteTolerance(os.Stdout, tol)
}
