package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ROUTESEARCH_GRAPH_FILE", "ROUTESEARCH_MIRROR", "ROUTESEARCH_FROM", "ROUTESEARCH_TO",
		"ROUTESEARCH_ALGORITHM", "ROUTESEARCH_HEURISTIC", "ROUTESEARCH_METRICS_FILE",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_ADD_SOURCE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Search.GraphFile)
	assert.Equal(t, "Robledo", cfg.Search.From)
	assert.Equal(t, "Estadio", cfg.Search.To)
	assert.Equal(t, AlgorithmBoth, cfg.Search.Algorithm)
	assert.Equal(t, HeuristicEuclidean, cfg.Search.Heuristic)
	assert.False(t, cfg.Search.Mirror)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Logging.AddSource)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROUTESEARCH_GRAPH_FILE", "/tmp/net.yaml")
	t.Setenv("ROUTESEARCH_MIRROR", "true")
	t.Setenv("ROUTESEARCH_FROM", "Centro")
	t.Setenv("ROUTESEARCH_TO", "Belén")
	t.Setenv("ROUTESEARCH_ALGORITHM", "BFS")
	t.Setenv("ROUTESEARCH_HEURISTIC", "Manhattan")
	t.Setenv("ROUTESEARCH_METRICS_FILE", "/tmp/metrics.prom")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_ADD_SOURCE", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SearchConfig{
		GraphFile:   "/tmp/net.yaml",
		Mirror:      true,
		From:        "Centro",
		To:          "Belén",
		Algorithm:   AlgorithmBFS,
		Heuristic:   HeuristicManhattan,
		MetricsFile: "/tmp/metrics.prom",
	}, cfg.Search)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json", AddSource: false}, cfg.Logging)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{name: "algorithm", key: "ROUTESEARCH_ALGORITHM", value: "dfs", want: `invalid algorithm "dfs"`},
		{name: "heuristic", key: "ROUTESEARCH_HEURISTIC", value: "chebyshev", want: `invalid heuristic "chebyshev"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_RequiresEndpoints(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Search.To = ""
	assert.Error(t, cfg.Validate())
}
