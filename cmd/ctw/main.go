/*
Command ctw computes the Context Tree Weighting probability of a sequence and
prints the weighted context tree.

Without arguments it reproduces the classic example of a binary sequence
1011010 with past 10 and a maximum context depth of 2:

	$ ctw
	   -> kt = 0.00244; ctw = 0.00671
	 0 -> kt = 0.31250; ctw = 0.31250
	…

Inputs may be given as flags, environment variables or files; see
`ctw --help`.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/npillmayer/ctw"
	"github.com/npillmayer/ctw/diagnostics"
	"github.com/npillmayer/ctw/formatter"
	"github.com/npillmayer/ctw/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ctw: %s\n", err.Error())
		os.Exit(1)
	}
}

var formats = []string{"text", "console", "html", "dot"}

func run(args []string, out io.Writer) error {
	app := cli.App{
		Name:      "ctw",
		Usage:     "context tree weighting for symbol sequences",
		Writer:    out,
		ErrWriter: os.Stderr,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "past",
			Usage:   "symbols preceding the sequence, providing initial contexts",
			Value:   "10",
			EnvVars: []string{"CTW_PAST"},
		},
		&cli.StringFlag{
			Name:    "sequence",
			Aliases: []string{"s"},
			Usage:   "sequence of symbols to model",
			Value:   "1011010",
			EnvVars: []string{"CTW_SEQUENCE"},
		},
		&cli.PathFlag{
			Name:  "past-file",
			Usage: "load the past from a UTF-8 text file (overrides --past)",
		},
		&cli.PathFlag{
			Name:  "sequence-file",
			Usage: "load the sequence from a UTF-8 text file (overrides --sequence)",
		},
		&cli.IntFlag{
			Name:    "depth",
			Aliases: []string{"d"},
			Usage:   "maximum context depth",
			Value:   2,
			EnvVars: []string{"CTW_DEPTH"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "report every context search",
		},
		&cli.BoolFlag{
			Name:  "parallel",
			Usage: "build the branches of the root concurrently",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format, one of " + strings.Join(formats, ", "),
			Value: "text",
		},
		&cli.StringFlag{
			Name:  "trace",
			Usage: "trace level (Error, Info, Debug)",
			Value: "Error",
		},
		&cli.BoolFlag{
			Name:  "predict",
			Usage: "print predictions for the symbol following the sequence",
		},
	}
	app.Action = runCTW
	return app.Run(args)
}

func runCTW(cctx *cli.Context) error {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(cctx.String("trace")))
	out := cctx.App.Writer
	//
	format := cctx.String("format")
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown output format %q", format)
	}
	past, err := input(cctx, "past")
	if err != nil {
		return err
	}
	seq, err := input(cctx, "sequence")
	if err != nil {
		return err
	}
	opts := []ctw.Option{ctw.Parallel(cctx.Bool("parallel"))}
	var diag *diagnostics.Broadcaster
	var reported <-chan struct{}
	if cctx.Bool("verbose") {
		diag = diagnostics.New()
		reported = diagnostics.Report(out, diag.Subscribe(cctx.Context, 64))
		opts = append(opts, ctw.WithObserver(diag.Observer()))
	}
	tree, err := ctw.New(past, seq, cctx.Int("depth"), opts...)
	if diag != nil {
		diag.Close()
		<-reported
	}
	if err != nil {
		return err
	}
	switch format {
	case "console":
		err = formatter.NewConsole(nil).Output(tree, out)
	case "html":
		err = formatter.HTML(tree, out)
	case "dot":
		err = formatter.Dot(tree, out)
	default:
		err = formatter.Text(tree, out)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "P(sequence) = %g, %.3f bits\n", tree.Probability(), tree.CodeLength())
	if cctx.Bool("predict") {
		return predict(tree, out)
	}
	return nil
}

// input returns the text for a flag, loaded from a file if "<name>-file" is set.
func input(cctx *cli.Context, name string) (string, error) {
	if path := cctx.Path(name + "-file"); path != "" {
		text, err := textfile.Load(path, true)
		if err != nil {
			return "", fmt.Errorf("cannot load %s: %w", name, err)
		}
		return text, nil
	}
	return cctx.String(name), nil
}

func predict(tree *ctw.Tree, out io.Writer) error {
	p, err := tree.PredictAll()
	if err != nil {
		return err
	}
	for _, x := range tree.Alphabet().Symbols() {
		fmt.Fprintf(out, "P(%s | sequence) = %2.5f\n", x, p[x])
	}
	return nil
}
