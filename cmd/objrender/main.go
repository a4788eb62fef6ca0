// objrender renders Wavefront OBJ meshes to image files without a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/softraster/internal/engine/camera"
	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/renderer"
	"github.com/Faultbox/softraster/internal/engine/snapshot"
	"github.com/Faultbox/softraster/internal/logger"
	"github.com/Faultbox/softraster/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render", "r":
		err = cmdRender(args)
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objrender - headless OBJ mesh renderer

Usage:
  objrender <command> [options]

Commands:
  render [options] <mesh.obj>   Render a mesh to a PNG or BMP file
  info <mesh.obj>               Show vertex and triangle counts and bounds

Render options:
  -o path          Output file, format from extension (default render.png)
  -width, -height  Image size (default 800x800)
  -pitch, -yaw, -roll  Rotation in degrees (default 20, 30, 0)
  -cull            Skip back-facing triangles
  -wireframe       Draw triangle edges (default true)
  -workers n       Rasterize in n parallel row bands
  -bg, -fill, -edge  Colors as #rrggbb
  -debug           Log render details

Examples:
  objrender render -o ship.png assets/spaceship.obj
  objrender render -yaw 90 -cull -wireframe=false -o side.bmp assets/spaceship.obj
  objrender info assets/spaceship.obj`)
}

type renderOptions struct {
	output           string
	width, height    int
	pitch, yaw, roll float64
	cull, wireframe  bool
	workers          int
	bg, fill, edge   string
	debug            bool
	mesh             string
}

func parseRenderFlags(args []string) (*renderOptions, error) {
	opts := &renderOptions{}
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.StringVar(&opts.output, "o", "render.png", "Output file")
	fs.IntVar(&opts.width, "width", 800, "Image width")
	fs.IntVar(&opts.height, "height", 800, "Image height")
	fs.Float64Var(&opts.pitch, "pitch", 20, "Rotation about X in degrees")
	fs.Float64Var(&opts.yaw, "yaw", 30, "Rotation about Y in degrees")
	fs.Float64Var(&opts.roll, "roll", 0, "Rotation about Z in degrees")
	fs.BoolVar(&opts.cull, "cull", false, "Skip back-facing triangles")
	fs.BoolVar(&opts.wireframe, "wireframe", true, "Draw triangle edges")
	fs.IntVar(&opts.workers, "workers", 1, "Parallel row bands")
	fs.StringVar(&opts.bg, "bg", "#0a0a28", "Background color")
	fs.StringVar(&opts.fill, "fill", "#ffff00", "Fill color")
	fs.StringVar(&opts.edge, "edge", "#282828", "Edge color")
	fs.BoolVar(&opts.debug, "debug", false, "Log render details")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() < 1 {
		return nil, fmt.Errorf("usage: objrender render [options] <mesh.obj>")
	}
	opts.mesh = fs.Arg(0)

	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.workers < 1 {
		opts.workers = 1
	}
	return opts, nil
}

func (o *renderOptions) style() (renderer.Style, error) {
	var s renderer.Style
	var err error
	if s.Background, err = framebuffer.ParseHex(o.bg); err != nil {
		return s, fmt.Errorf("-bg: %w", err)
	}
	if s.Fill, err = framebuffer.ParseHex(o.fill); err != nil {
		return s, fmt.Errorf("-fill: %w", err)
	}
	if s.Edge, err = framebuffer.ParseHex(o.edge); err != nil {
		return s, fmt.Errorf("-edge: %w", err)
	}
	s.CullBackfaces = o.cull
	s.Wireframe = o.wireframe
	return s, nil
}

func cmdRender(args []string) error {
	opts, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	if opts.debug {
		if err := logger.Init("debug", ""); err != nil {
			return err
		}
		defer logger.Sync()
	}
	if err := render(opts); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", opts.output, opts.width, opts.height)
	return nil
}

func render(opts *renderOptions) error {
	style, err := opts.style()
	if err != nil {
		return err
	}
	if _, err := snapshot.FormatFromPath(opts.output); err != nil {
		return err
	}

	mesh, err := formats.LoadOBJ(opts.mesh)
	if err != nil {
		return err
	}

	r := renderer.New(renderer.Config{
		Width:   opts.width,
		Height:  opts.height,
		Workers: opts.workers,
	})
	rot := camera.FromDegrees(float32(opts.pitch), float32(opts.yaw), float32(opts.roll))
	buf := r.Render(mesh, rot, style)

	return snapshot.SaveTo(opts.output, buf)
}

func cmdInfo(w io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: objrender info <mesh.obj>")
	}

	mesh, err := formats.LoadOBJ(args[0])
	if err != nil {
		return err
	}

	b := mesh.Bounds()
	size := b.Size()
	center := b.Center()
	fmt.Fprintf(w, "Mesh:      %s\n", args[0])
	fmt.Fprintf(w, "Vertices:  %d\n", len(mesh.Vertices))
	fmt.Fprintf(w, "Triangles: %d\n", len(mesh.Faces))
	fmt.Fprintf(w, "Bounds:    (%g, %g, %g) - (%g, %g, %g)\n", b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintf(w, "Size:      %g x %g x %g\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "Center:    (%g, %g, %g)\n", center.X, center.Y, center.Z)
	return nil
}
