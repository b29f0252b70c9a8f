// Command zplot compiles a complex expression over the free variable z and
// consumes both compiler artifacts: it prints the generated shader function
// (or the full spliceable fragment source), evaluates single points, renders
// a domain-colored PNG on the CPU via the evaluator, and can serve plots
// over HTTP with per-request query parameters.
//
// Flag defaults come from ZPLOT_* environment variables:
//
//	ZPLOT_EXPR, ZPLOT_WIDTH, ZPLOT_HEIGHT, ZPLOT_RANGE, ZPLOT_ADDR
//
// Examples:
//
//	zplot -expr "sin(z)/(z^2 + 1)" -shader
//	zplot -expr "1/z" -point 0.5,0.5
//	zplot -expr "e^(i*pi*z)" -o plot.png
//	zplot -a :8080
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/xyproto/env/v2"

	"github.com/helicoid/zplot"
	"github.com/helicoid/zplot/pkg/cplx"
)

var (
	flagExpr     = flag.String("expr", env.Str("ZPLOT_EXPR", zplot.DefaultExpression), "expression to compile")
	flagShader   = flag.Bool("shader", false, "print the generated shader function and exit")
	flagFragment = flag.Bool("fragment", false, "print the companion routine library plus the shader function and exit")
	flagPoint    = flag.String("point", "", "evaluate at a single point \"re,im\" and exit")
	flagOut      = flag.String("o", "", "write a domain-colored PNG to this file")
	flagWidth    = flag.Int("width", env.Int("ZPLOT_WIDTH", 800), "plot width in pixels")
	flagHeight   = flag.Int("height", env.Int("ZPLOT_HEIGHT", 800), "plot height in pixels")
	flagRange    = flag.Float64("range", env.Float64("ZPLOT_RANGE", 2.0), "half-width of the plotted square of the plane")
	flagAddr     = flag.String("a", env.Str("ZPLOT_ADDR", ""), "address on which to serve plots over HTTP")
	flagVerbose  = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	prog, err := zplot.NewProgram(zplot.WithSource(*flagExpr), zplot.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "zplot: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *flagShader:
		fmt.Print(prog.ShaderSource())
	case *flagFragment:
		fmt.Print(prog.FragmentSource())
	case *flagPoint != "":
		z, err := parsePoint(*flagPoint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zplot: %v\n", err)
			os.Exit(1)
		}
		w := prog.Evaluate(z)
		fmt.Printf("f(%g%+gi) = %g%+gi\n", z.Re, z.Im, w.Re, w.Im)
	case *flagAddr != "":
		serve(prog, logger, *flagAddr)
	case *flagOut != "":
		if err := writePNG(*flagOut, prog, *flagWidth, *flagHeight, *flagRange); err != nil {
			fmt.Fprintf(os.Stderr, "zplot: %v\n", err)
			os.Exit(1)
		}
		logger.Info("plot written", "file", *flagOut, "expr", prog.Source())
	default:
		fmt.Print(prog.ShaderSource())
	}
}

// parsePoint parses "re,im" into a complex value.
func parsePoint(s string) (cplx.Complex, error) {
	var re, im float64
	if _, err := fmt.Sscanf(s, "%g,%g", &re, &im); err != nil {
		return cplx.Zero, fmt.Errorf("invalid point %q (want \"re,im\"): %v", s, err)
	}
	return cplx.New(re, im), nil
}

func writePNG(path string, prog *zplot.Program, width, height int, halfRange float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, render(prog, width, height, halfRange))
}

// serve answers every request with a domain-colored PNG. Query parameters
// expr, width, height and range override the process defaults per request;
// a request with a malformed expression gets a plain-text error and the
// process-level program is left untouched.
func serve(prog *zplot.Program, logger *slog.Logger, addr string) {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		width := queryInt(q.Get("width"), *flagWidth)
		height := queryInt(q.Get("height"), *flagHeight)
		halfRange := queryFloat(q.Get("range"), *flagRange)

		target := prog
		if expr := q.Get("expr"); expr != "" {
			p, err := zplot.NewProgram(zplot.WithSource(expr), zplot.WithLogger(logger))
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			target = p
		}

		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, render(target, width, height, halfRange)); err != nil {
			logger.Error("encode failed", "error", err)
		}
	})

	logger.Info("serving plots", "addr", addr, "expr", prog.Source())
	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Fprintf(os.Stderr, "zplot: %v\n", err)
		os.Exit(1)
	}
}

func queryInt(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}

func queryFloat(s string, def float64) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
		return v
	}
	return def
}
