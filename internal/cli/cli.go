// Package cli parses command-line arguments into an app.Config and maps
// usage problems to exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/app"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

// ExitCodeUsage is returned for malformed invocations.
const ExitCodeUsage = 2

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitCodeUsage, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns the config, whether the
// program should exit cleanly right away (help was requested), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - weighted grid shortest paths with Dijkstra and A*.

Usage:
  gridpath [options] [SCENARIO.hcl]

Arguments:
  SCENARIO.hcl
    Optional scenario file. Flags override what it says.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to a scenario file.")
	sizeFlag := flagSet.Int("size", grid.DefaultSize, "Grid side length.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for weights and scatter. Unset means time-seeded.")
	algoFlag := flagSet.String("algo", "", "Algorithm: 'dijkstra', 'astar' or 'both'. Defaults to the scenario's, then dijkstra.")
	scatterFlag := flagSet.Float64("scatter", 0, "Upper bound of the per-cell barrier chance, within [0,1]. 0.5 matches the classic random board.")
	startFlag := flagSet.String("start", "", "Start cell as row,col. Defaults to the top-left corner.")
	endFlag := flagSet.String("end", "", "End cell as row,col. Defaults to the bottom-right corner.")
	delayFlag := flagSet.Duration("delay", 0, "Pause after each search step, e.g. 20ms.")
	streamURLFlag := flagSet.String("stream-url", "", "socket.io endpoint to stream steps to, e.g. http://localhost:3000/socket.io/.")
	streamNSFlag := flagSet.String("stream-namespace", "", "socket.io namespace.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	quietFlag := flagSet.Bool("quiet", false, "Print statistics only, without the rendered grid.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := *scenarioFlag
	switch {
	case path != "" && flagSet.NArg() > 0:
		return nil, false, usageError("scenario given both as -scenario and as an argument")
	case flagSet.NArg() > 1:
		return nil, false, usageError("expected at most one scenario argument, got %d", flagSet.NArg())
	case flagSet.NArg() == 1:
		path = flagSet.Arg(0)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg := app.Config{
		ScenarioPath:    path,
		Algorithm:       strings.ToLower(*algoFlag),
		Delay:           *delayFlag,
		StreamURL:       *streamURLFlag,
		StreamNamespace: *streamNSFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		Quiet:           *quietFlag,
	}
	if set["size"] {
		if *sizeFlag <= 0 {
			return nil, false, usageError("invalid size: must be positive, got %d", *sizeFlag)
		}
		cfg.Size = *sizeFlag
	}
	if set["seed"] {
		cfg.Seed = seedFlag
	}
	if set["scatter"] {
		cfg.Scatter = scatterFlag
	}
	if cfg.Algorithm != "" {
		if _, err := scenario.ParseAlgorithms(cfg.Algorithm, search.Dijkstra); err != nil {
			return nil, false, usageError("invalid algo %q: must be 'dijkstra', 'astar' or 'both'", *algoFlag)
		}
	}
	var err error
	if cfg.Start, err = parseCoordFlag("start", *startFlag); err != nil {
		return nil, false, err
	}
	if cfg.End, err = parseCoordFlag("end", *endFlag); err != nil {
		return nil, false, err
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	return config, false, nil
}

// parseCoordFlag returns nil for an unset flag.
func parseCoordFlag(name, raw string) (*grid.Coord, error) {
	if raw == "" {
		return nil, nil
	}
	c, err := grid.ParseCoord(raw)
	if err != nil {
		return nil, usageError("invalid %s: %v", name, err)
	}

	return &c, nil
}
