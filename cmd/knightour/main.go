// Command knightour finds knight's tours: exhaustive heuristic search for
// arbitrary board shapes, divide-and-conquer for large clean rectangles.
package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/divide"
	"github.com/katalvlaran/knightour/movegraph"
	"github.com/katalvlaran/knightour/render"
	"github.com/katalvlaran/knightour/shape"
	"github.com/katalvlaran/knightour/warnsdorff"
)

type options struct {
	size          string
	useWarnsdorff bool
	start         string
	boardFile     string
	boardFormat   string
	imageMode     string
	threshold     uint8
	cornerRadius  string
	output        string
	format        string
	quiet         bool
	verbosity     int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "knightour",
		Short: "Find a knight's tour of a board",
		Long: `Find a knight's tour: a path visiting every square of a board exactly
once by knight moves.

Clean rectangular boards are solved by divide-and-conquer tiling, which
handles very large boards in linear time. Boards with excluded squares
(from a text drawing, an image, or rounded corners) or with a custom
starting square use the exhaustive heuristic search instead.

Examples:
  knightour -s 8
  knightour -s 100x60 -o tour.svg
  knightour -s 20 -r 5
  knightour -f heart.png --image-mode luminance -w`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.size, "size", "s", "", "Board size, like 8 or 12x9")
	flags.BoolVarP(&o.useWarnsdorff, "use-warnsdorff", "w", false, "Force the exhaustive heuristic search")
	flags.StringVarP(&o.start, "start", "p", "", "Starting square, like A1 (implies -w)")
	flags.StringVarP(&o.boardFile, "board-file", "f", "", "Board shape file, text drawing or image (implies -w)")
	flags.StringVar(&o.boardFormat, "board-format", "", "Board file format: text or image (default by extension)")
	flags.StringVar(&o.imageMode, "image-mode", "luminance", "Image interpretation: alpha, blackwhite or luminance")
	flags.Uint8Var(&o.threshold, "threshold", 128, "Pixel threshold for alpha and luminance modes")
	flags.StringVarP(&o.cornerRadius, "corner-radius", "r", "", "Rounded corners, like 5 or '(3,4) 0 0 5' (implies -w)")
	flags.StringVarP(&o.output, "output", "o", "", "Output file (default stdout)")
	flags.StringVarP(&o.format, "format", "O", "auto", "Output format: auto, text or svg")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress all log output")
	flags.CountVarP(&o.verbosity, "verbose", "v", "Increase log detail (-v debug, -vv trace)")

	return cmd
}

func newLogger(o options) zerolog.Logger {
	if o.quiet {
		return zerolog.Nop()
	}

	level := zerolog.InfoLevel
	switch {
	case o.verbosity == 1:
		level = zerolog.DebugLevel
	case o.verbosity >= 2:
		level = zerolog.TraceLevel
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}

	return zerolog.New(output).With().Timestamp().Logger().Level(level)
}

func run(cmd *cobra.Command, o options) error {
	log := newLogger(o)

	mask, err := loadMask(o)
	if err != nil {
		return err
	}

	size, err := boardSize(o, mask)
	if err != nil {
		return err
	}

	start := board.Zero
	if o.start != "" {
		if start, err = board.ParsePosArg(o.start); err != nil {
			return err
		}
		if !size.Fits(start) {
			return fmt.Errorf("starting square %s is outside the %s board", start, size)
		}
	}

	graph, elapsed, err := solve(o, size, start, mask, log)
	if errors.Is(err, warnsdorff.ErrNoTour) {
		fmt.Fprintf(cmd.OutOrStdout(), "No knight's tour is possible for this configuration (%s).\n", size)
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Stringer("size", size).Dur("elapsed", elapsed).Msg("tour found")

	return write(cmd, o, graph, elapsed)
}

// solve picks the solver: divide-and-conquer needs a clean rectangle, so
// any shape mask, custom start or explicit request routes to the
// exhaustive search.
func solve(o options, size board.Size, start board.Pos, mask *shape.Mask, log zerolog.Logger) (*movegraph.Graph, time.Duration, error) {
	if o.useWarnsdorff || mask != nil || start != board.Zero {
		opts := []warnsdorff.Option{
			warnsdorff.WithStart(start),
			warnsdorff.WithLogger(log),
		}
		if mask != nil {
			opts = append(opts, warnsdorff.WithDead(mask.Dead))
		}
		res, err := warnsdorff.Solve(size, opts...)
		if err != nil {
			return nil, 0, err
		}

		return res.Graph, res.Elapsed, nil
	}

	res, err := divide.Solve(size, divide.WithLogger(log))
	if err != nil {
		return nil, 0, err
	}

	return res.Graph, res.Elapsed, nil
}

func loadMask(o options) (*shape.Mask, error) {
	if o.boardFile != "" {
		return maskFromFile(o)
	}

	if o.cornerRadius == "" {
		return nil, nil
	}

	cr, err := shape.ParseCornerRadius(o.cornerRadius)
	if err != nil {
		return nil, err
	}
	if o.size == "" {
		return nil, errors.New("corner radius requires an explicit board size")
	}
	size, err := board.ParseSize(o.size)
	if err != nil {
		return nil, err
	}

	mask := cr.Mask(size)

	return &mask, nil
}

func maskFromFile(o options) (*shape.Mask, error) {
	format := o.boardFormat
	if format == "" {
		if strings.EqualFold(filepath.Ext(o.boardFile), ".txt") {
			format = "text"
		} else {
			format = "image"
		}
	}

	f, err := os.Open(o.boardFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var mask shape.Mask
	switch format {
	case "text":
		mask, err = shape.FromText(f)
	case "image":
		var mode shape.ImageMode
		if mode, err = shape.ParseImageMode(o.imageMode); err != nil {
			return nil, err
		}
		var img image.Image
		if img, _, err = image.Decode(f); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", o.boardFile, err)
		}
		mask, err = shape.FromImage(img, mode, o.threshold)
	default:
		return nil, fmt.Errorf("unknown board format %q, expected text or image", format)
	}
	if err != nil {
		return nil, err
	}

	return &mask, nil
}

func boardSize(o options, mask *shape.Mask) (board.Size, error) {
	if mask != nil {
		return mask.Size, nil
	}
	if o.size == "" {
		return board.Size{}, errors.New("a board size is required, like -s 8 or -s 12x9")
	}

	return board.ParseSize(o.size)
}

func write(cmd *cobra.Command, o options, graph *movegraph.Graph, elapsed time.Duration) error {
	var w io.Writer = cmd.OutOrStdout()
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	format := o.format
	if format == "auto" {
		format = "text"
		if strings.EqualFold(filepath.Ext(o.output), ".svg") {
			format = "svg"
		}
	}

	switch format {
	case "text":
		return render.Text(w, graph.ToBoard())
	case "svg":
		render.SVG(w, graph, elapsed)
		return nil
	}

	return fmt.Errorf("unknown output format %q, expected auto, text or svg", format)
}
