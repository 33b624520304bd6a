package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdrpinto/routesearch"
	"github.com/pdrpinto/routesearch/graphfile"
	"github.com/pdrpinto/routesearch/internal/config"
	"github.com/pdrpinto/routesearch/internal/logging"
	"github.com/pdrpinto/routesearch/metrics"
	"github.com/pdrpinto/routesearch/report"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, searches the configured network and prints the results to outW.
// Logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	fset := flag.NewFlagSet("routefind", flag.ContinueOnError)
	fset.SetOutput(outW)
	envFile := fset.String("env-file", ".env", "optional dotenv file loaded before reading the environment")
	graphFile := fset.String("graph", "", "YAML network file (default: bundled Medellín network)")
	mirror := fset.Bool("mirror", false, "add reverse edges missing from the network file")
	from := fset.String("from", "", "start location")
	to := fset.String("to", "", "goal location")
	algorithm := fset.String("algorithm", "", "astar, bfs or both")
	heuristic := fset.String("heuristic", "", "euclidean, manhattan or zero")
	metricsFile := fset.String("metrics-file", "", "write Prometheus metrics to this file after searching")
	trace := fset.Bool("trace", false, "log every settled node and relaxation")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", *envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Search.GraphFile = *graphFile
		case "mirror":
			cfg.Search.Mirror = *mirror
		case "from":
			cfg.Search.From = *from
		case "to":
			cfg.Search.To = *to
		case "algorithm":
			cfg.Search.Algorithm = *algorithm
		case "heuristic":
			cfg.Search.Heuristic = *heuristic
		case "metrics-file":
			cfg.Search.MetricsFile = *metricsFile
		case "trace":
			if *trace {
				cfg.Logging.Level = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Logging, errW).With("run_id", uuid.NewString())

	network, err := loadNetwork(cfg.Search)
	if err != nil {
		return err
	}
	logger.Info("network loaded",
		"name", network.Name,
		"nodes", network.Graph.Len(),
		"edges", len(network.Graph.Edges()),
	)
	for _, e := range network.Graph.Asymmetric() {
		logger.Warn("edge has no mirror", "from", e.From, "to", e.To, "weight", e.Weight)
	}
	for _, node := range []string{cfg.Search.From, cfg.Search.To} {
		if !network.Graph.Has(node) {
			logger.Warn("location is not in the network", "node", node)
		}
	}

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)
	tracer := routesearch.NewLogObserver[string](logger)

	fmt.Fprintf(outW, "Searching path from %s to %s\n\n", cfg.Search.From, cfg.Search.To)

	var results []routesearch.Result[string]
	if cfg.Search.Algorithm != config.AlgorithmBFS {
		began := time.Now()
		res, err := routesearch.AStar(network.Graph, cfg.Search.From, cfg.Search.To,
			heuristicFor(cfg.Search.Heuristic, network.Coords),
			routesearch.WithObserver[string](tracer, metrics.NewObserver[string](collector, routesearch.AlgorithmAStar)),
		)
		if err != nil {
			collector.ObserveError(routesearch.AlgorithmAStar, time.Since(began))
			return fmt.Errorf("a* search: %w", err)
		}
		metrics.ObserveResult(collector, res)
		res.Algorithm = fmt.Sprintf("%s (%s)", res.Algorithm, cfg.Search.Heuristic)
		results = append(results, res)
	}
	if cfg.Search.Algorithm != config.AlgorithmAStar {
		res := routesearch.BFS(network.Graph, cfg.Search.From, cfg.Search.To,
			routesearch.WithObserver[string](tracer, metrics.NewObserver[string](collector, routesearch.AlgorithmBFS)),
		)
		metrics.ObserveResult(collector, res)
		results = append(results, res)
	}

	for _, res := range results {
		logger.Info("search finished",
			"algorithm", res.Algorithm,
			"found", res.Found,
			"settled", res.SettledCount,
			"elapsed", res.Elapsed,
		)
		if err := report.Write(outW, res, network.Units); err != nil {
			return err
		}
		fmt.Fprintln(outW)
	}
	if len(results) > 1 {
		if err := report.Compare(outW, network.Units, results...); err != nil {
			return err
		}
	}

	if cfg.Search.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.Search.MetricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", cfg.Search.MetricsFile)
	}
	return nil
}

func loadNetwork(cfg config.SearchConfig) (*graphfile.Network, error) {
	var opts []graphfile.LoadOption
	if cfg.Mirror {
		opts = append(opts, graphfile.Mirror())
	}
	if cfg.GraphFile == "" {
		return graphfile.Medellin(opts...)
	}
	return graphfile.Load(cfg.GraphFile, opts...)
}

func heuristicFor(name string, coords routesearch.Coordinates[string]) routesearch.Heuristic[string] {
	switch name {
	case config.HeuristicManhattan:
		return routesearch.Manhattan(coords)
	case config.HeuristicZero:
		return routesearch.Zero[string]()
	default:
		return routesearch.Euclidean(coords)
	}
}
