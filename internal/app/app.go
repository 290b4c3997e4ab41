package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/observe"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stream"
)

// App runs scenarios and reports on them.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config

	// dial is stream.Dial; swapped in tests.
	dial func(context.Context, stream.Config) (hookSink, error)
}

// hookSink is the part of *stream.Client the app drives.
type hookSink interface {
	Hook() observe.Hook
	EmitResult(stream.Summary)
	Close() error
}

// NewApp builds an App that prints reports to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		dial: func(ctx context.Context, c stream.Config) (hookSink, error) {
			return stream.Dial(ctx, c)
		},
	}
}

// Run loads or generates the board, runs each requested algorithm on it and
// writes the rendered grid and statistics.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.")

	sc, err := a.scenario(ctx)
	if err != nil {
		return err
	}
	algos, err := sc.Algorithms(search.Dijkstra)
	if err != nil {
		return err
	}

	g, start, end, err := sc.Build()
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}
	a.logger.Info("Grid ready.",
		"size", g.Size(),
		"start", start.Coord().String(),
		"end", end.Coord().String(),
		"barriers", len(g.Find(grid.Barrier)),
		"regions", len(g.Regions()),
	)
	if ok, _ := g.Connected(start.Coord(), end.Coord()); !ok {
		a.logger.Warn("End is not reachable from start; the search will exhaust the reachable region.")
	}

	var sink hookSink
	if a.cfg.StreamURL != "" {
		sink, err = a.dial(ctx, stream.Config{URL: a.cfg.StreamURL, Namespace: a.cfg.StreamNamespace})
		if err != nil {
			return err
		}
		defer sink.Close()
	}

	results := make([]search.Result, 0, len(algos))
	for _, algo := range algos {
		res, err := a.runOne(g, start, end, algo, sink)
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	if len(results) > 1 {
		if err := a.compare(results); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run finished.")

	return nil
}

// scenario loads the scenario file, if any, and layers the CLI overrides.
// Without explicit endpoints the run goes corner to corner.
func (a *App) scenario(ctx context.Context) (*scenario.Scenario, error) {
	sc := &scenario.Scenario{}
	if a.cfg.ScenarioPath != "" {
		loaded, err := scenario.LoadFile(ctx, a.cfg.ScenarioPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}
	a.cfg.apply(sc)

	size := sc.Size
	if len(sc.Layout) > 0 {
		size = len(sc.Layout)
	} else if size == 0 {
		size = grid.DefaultSize
	}
	if sc.Start == nil {
		sc.Start = &grid.Coord{Row: 0, Col: 0}
	}
	if sc.End == nil {
		sc.End = &grid.Coord{Row: size - 1, Col: size - 1}
	}

	return sc, nil
}

func (a *App) runOne(g *grid.Grid, start, end *grid.Cell, algo search.Algorithm, sink hookSink) (search.Result, error) {
	hooks := []observe.Hook{observe.Log(a.logger.With("algorithm", algo.String()))}
	if sink != nil {
		hooks = append(hooks, sink.Hook())
	}
	hook := observe.Chain(hooks...)
	if a.cfg.Delay > 0 {
		hook = observe.Delay(a.cfg.Delay, hook)
	}

	res, err := search.Run(g, start, end,
		search.WithAlgorithm(algo),
		search.WithHook(hook),
		search.WithLogger(a.logger),
	)
	if err != nil {
		return search.Result{}, err
	}
	if sink != nil {
		sink.EmitResult(stream.NewSummary(res))
	}

	if !a.cfg.Quiet {
		if _, err := fmt.Fprintf(a.outW, "%s\n", algo); err != nil {
			return res, err
		}
		if err := renderGrid(a.outW, g); err != nil {
			return res, err
		}
	}

	return res, writeStats(a.outW, res)
}

// compare reports how the runs differ on the same board.
func (a *App) compare(results []search.Result) error {
	first := results[0]
	for _, res := range results[1:] {
		if res.TotalCost != first.TotalCost {
			a.logger.Error("Algorithms disagree on cost.",
				"baseline", first.Algorithm.String(),
				"baseline_cost", first.TotalCost,
				"algorithm", res.Algorithm.String(),
				"cost", res.TotalCost,
			)
		}
		if _, err := fmt.Fprintf(a.outW, "%s visited %d cells, %s visited %d\n",
			first.Algorithm, first.Visited, res.Algorithm, res.Visited); err != nil {
			return err
		}
	}

	return nil
}
