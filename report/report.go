// Package report formats search results for terminals and logs.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pdrpinto/routesearch"
)

// Write prints one result block: path, cost when known, settled count, settled
// sequence and elapsed time. units is appended to the cost and may be empty.
func Write[N comparable](w io.Writer, res routesearch.Result[N], units string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Result: %s ---\n", res.Algorithm)
	if !res.Found {
		b.WriteString("No path found.\n")
	} else {
		fmt.Fprintf(&b, "Path: %s\n", join(res.Path, " -> "))
		if res.HasCost {
			fmt.Fprintf(&b, "Total cost: %s\n", formatCost(res.TotalCost, units))
		}
	}
	fmt.Fprintf(&b, "Nodes settled: %d\n", res.SettledCount)
	fmt.Fprintf(&b, "Settled sequence: [%s]\n", join(res.SettledOrder, ", "))
	fmt.Fprintf(&b, "Elapsed: %.6f s\n", res.Elapsed.Seconds())

	_, err := io.WriteString(w, b.String())
	return err
}

// Compare prints a one-line-per-result summary table.
func Compare[N comparable](w io.Writer, units string, results ...routesearch.Result[N]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tHOPS\tCOST\tSETTLED\tDISCOVERED\tELAPSED")
	for _, res := range results {
		hops, cost := "-", "-"
		if res.Found {
			hops = fmt.Sprint(len(res.Path) - 1)
		}
		if res.HasCost {
			cost = formatCost(res.TotalCost, units)
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\t%d\t%d\t%.6fs\n",
			res.Algorithm, res.Found, hops, cost, res.SettledCount, res.Discovered, res.Elapsed.Seconds())
	}
	return tw.Flush()
}

func formatCost(cost float64, units string) string {
	if units == "" {
		return fmt.Sprintf("%.3f", cost)
	}
	return fmt.Sprintf("%.3f %s", cost, units)
}

func join[N comparable](nodes []N, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, sep)
}
