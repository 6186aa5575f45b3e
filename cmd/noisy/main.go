package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"noisy/gen"
	"noisy/internal/render"
)

func main() {
	genName := flag.String("gen", "simplex", "generator: "+kindNames())
	dim := flag.Int("dim", 2, "dimension to sample (1, 2 or 3)")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	size := flag.String("size", "80x40", "output size as WxH")
	step := flag.Float64("step", 0.02, "coordinate step between cells")
	x := flag.Float64("x", 123, "x coordinate of the first column")
	y := flag.Float64("y", 132, "y coordinate of the first row")
	z := flag.Float64("z", 0, "z slice for -dim 3")
	out := flag.String("out", "", "output file (default: stdout)")
	stats := flag.Bool("stats", false, "print the glyph distribution to stderr")
	flag.Parse()

	kind, err := gen.ParseKind(*genName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (available: %s)\n", err, kindNames())
		os.Exit(1)
	}

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := gen.New(kind, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Rendering %dD %s noise, %dx%d cells at step %g (seed %d)...\n", *dim, kind, w, h, *step, *seed)

	view := render.Viewport{X: *x, Y: *y, Z: *z, Step: *step, W: w, H: h}
	lines, err := render.Field(g, *dim, view, render.ForKind(kind))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		err = writeLines(os.Stdout, lines)
	} else {
		err = writeFile(*out, lines)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s (%d lines)\n", *out, len(lines))
	}
	if *stats {
		printDistribution(os.Stderr, lines, render.ForKind(kind))
	}
}

// writeFile writes lines to path. The file is closed before returning and a
// failed close is reported like a failed write.
func writeFile(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeLines(f, lines); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// printDistribution writes how often each glyph of grad occurs in lines.
func printDistribution(w io.Writer, lines []string, grad render.Gradient) {
	counts := make(map[rune]int)
	total := 0
	for _, l := range lines {
		for _, r := range l {
			counts[r]++
			total++
		}
	}
	if total == 0 {
		return
	}
	fmt.Fprintf(w, "\nGlyph distribution:\n")
	for i, r := range grad {
		c := counts[r]
		fmt.Fprintf(w, "  level %d %q %6d (%5.1f%%)\n", i, r, c, float64(c)/float64(total)*100)
	}
}

func kindNames() string {
	names := make([]string, 0, len(gen.Kinds()))
	for _, k := range gen.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width %q (minimum 1)", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height %q (minimum 1)", parts[1])
	}
	return w, h, nil
}
