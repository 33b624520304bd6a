package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates the settings of the routefind command.
type Config struct {
	Search  SearchConfig
	Logging LoggingConfig
}

// SearchConfig selects the network and the algorithms to run.
type SearchConfig struct {
	// GraphFile is a YAML network file; empty means the bundled Medellín network.
	GraphFile   string
	Mirror      bool
	From        string
	To          string
	Algorithm   string // astar|bfs|both
	Heuristic   string // euclidean|manhattan|zero
	MetricsFile string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level     string
	Format    string // text|json
	AddSource bool
}

const (
	AlgorithmAStar = "astar"
	AlgorithmBFS   = "bfs"
	AlgorithmBoth  = "both"

	HeuristicEuclidean = "euclidean"
	HeuristicManhattan = "manhattan"
	HeuristicZero      = "zero"
)

const (
	defaultFrom          = "Robledo"
	defaultTo            = "Estadio"
	defaultAlgorithm     = AlgorithmBoth
	defaultHeuristic     = HeuristicEuclidean
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Search: SearchConfig{
			GraphFile:   os.Getenv("ROUTESEARCH_GRAPH_FILE"),
			Mirror:      parseBoolWithDefault("ROUTESEARCH_MIRROR", false),
			From:        valueOrDefault("ROUTESEARCH_FROM", defaultFrom),
			To:          valueOrDefault("ROUTESEARCH_TO", defaultTo),
			Algorithm:   strings.ToLower(valueOrDefault("ROUTESEARCH_ALGORITHM", defaultAlgorithm)),
			Heuristic:   strings.ToLower(valueOrDefault("ROUTESEARCH_HEURISTIC", defaultHeuristic)),
			MetricsFile: os.Getenv("ROUTESEARCH_METRICS_FILE"),
		},
		Logging: LoggingConfig{
			Level:     valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:    valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			AddSource: parseBoolWithDefault("LOG_ADD_SOURCE", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings. It is called by Load and should be
// called again after command-line overrides.
func (c Config) Validate() error {
	switch c.Search.Algorithm {
	case AlgorithmAStar, AlgorithmBFS, AlgorithmBoth:
	default:
		return fmt.Errorf("invalid algorithm %q (want %s, %s or %s)", c.Search.Algorithm, AlgorithmAStar, AlgorithmBFS, AlgorithmBoth)
	}
	switch c.Search.Heuristic {
	case HeuristicEuclidean, HeuristicManhattan, HeuristicZero:
	default:
		return fmt.Errorf("invalid heuristic %q (want %s, %s or %s)", c.Search.Heuristic, HeuristicEuclidean, HeuristicManhattan, HeuristicZero)
	}
	if c.Search.From == "" || c.Search.To == "" {
		return fmt.Errorf("both start and goal locations are required")
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
