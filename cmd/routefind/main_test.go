package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears the variables config.Load reads and points -env-file at a
// file that does not exist.
func isolate(t *testing.T) []string {
	t.Helper()
	for _, key := range []string{
		"ROUTESEARCH_GRAPH_FILE", "ROUTESEARCH_MIRROR", "ROUTESEARCH_FROM", "ROUTESEARCH_TO",
		"ROUTESEARCH_ALGORITHM", "ROUTESEARCH_HEURISTIC", "ROUTESEARCH_METRICS_FILE",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_ADD_SOURCE",
	} {
		t.Setenv(key, "")
	}
	return []string{"-env-file", filepath.Join(t.TempDir(), "absent.env")}
}

func TestRun_DefaultDemo(t *testing.T) {
	args := isolate(t)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run(out, logs, args))

	assert.Contains(t, out.String(), "Searching path from Robledo to Estadio")
	assert.Contains(t, out.String(), "--- Result: A* (euclidean) ---")
	assert.Contains(t, out.String(), "--- Result: BFS ---")
	assert.Contains(t, out.String(), "Path: Robledo -> Laureles -> Estadio")
	assert.Contains(t, out.String(), "Total cost: 4.000 km")
	assert.Contains(t, out.String(), "DISCOVERED")
	assert.Contains(t, logs.String(), "network loaded")
	assert.Contains(t, logs.String(), "run_id=")
	assert.NotContains(t, logs.String(), "node settled")
}

func TestRun_TraceAndMetrics(t *testing.T) {
	args := isolate(t)
	metricsPath := filepath.Join(t.TempDir(), "search.prom")
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	args = append(args, "-trace", "-algorithm", "astar", "-heuristic", "zero", "-metrics-file", metricsPath)
	require.NoError(t, run(out, logs, args))

	assert.Contains(t, logs.String(), "node settled")
	assert.Contains(t, logs.String(), "neighbor relaxed")
	assert.NotContains(t, out.String(), "BFS")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `routesearch_settled_nodes_total{algorithm="A*"} 5`)
	assert.Contains(t, string(data), `routesearch_searches_total{algorithm="A*",outcome="found"} 1`)
}

func TestRun_EnvFileAndGraphFile(t *testing.T) {
	args := isolate(t)
	dir := t.TempDir()

	graphPath := filepath.Join(dir, "line.yaml")
	require.NoError(t, os.WriteFile(graphPath, []byte(`
name: line
nodes:
  - id: A
    coord: [0, 0]
    edges:
      - {to: B, weight: 1}
  - id: B
    coord: [1, 0]
    edges:
      - {to: C, weight: 1}
  - id: C
    coord: [2, 0]
`), 0o600))
	envPath := filepath.Join(dir, "search.env")
	require.NoError(t, os.WriteFile(envPath, []byte("ROUTESEARCH_FROM=A\nROUTESEARCH_TO=C\nROUTESEARCH_ALGORITHM=bfs\n"), 0o600))

	// godotenv leaves present variables alone, so drop the empty ones isolate
	// set. t.Setenv restores them afterwards.
	for _, key := range []string{"ROUTESEARCH_FROM", "ROUTESEARCH_TO", "ROUTESEARCH_ALGORITHM"} {
		require.NoError(t, os.Unsetenv(key))
	}

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	args = append(args, "-env-file", envPath, "-graph", graphPath, "-mirror")
	require.NoError(t, run(out, logs, args))

	assert.Contains(t, out.String(), "Path: A -> B -> C")
	assert.NotContains(t, logs.String(), "edge has no mirror")
}

func TestRun_UnreachableGoalIsNotAnError(t *testing.T) {
	args := append(isolate(t), "-from", "Robledo", "-to", "Atlantis", "-algorithm", "bfs")
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run(out, logs, args))

	assert.Contains(t, out.String(), "No path found.")
	assert.Contains(t, out.String(), "Nodes settled: 14")
	assert.Contains(t, logs.String(), "location is not in the network")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad heuristic", args: []string{"-heuristic", "chebyshev"}, want: "invalid heuristic"},
		{name: "missing graph", args: []string{"-graph", "/nonexistent/net.yaml"}, want: "failed to open network file"},
		{name: "missing coordinate", args: []string{"-to", "Atlantis", "-algorithm", "astar"}, want: "missing coordinate for node Atlantis"},
		{name: "unknown flag", args: []string{"-bogus"}, want: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(isolate(t), tt.args...)
			err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
