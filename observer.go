package routesearch

import (
	"context"
	"log/slog"
)

// LogObserver writes a step trace of the search to a slog.Logger at debug level.
type LogObserver[N comparable] struct {
	logger *slog.Logger
}

// NewLogObserver returns an Observer that logs every settlement and relaxation.
func NewLogObserver[N comparable](logger *slog.Logger) *LogObserver[N] {
	return &LogObserver[N]{logger: logger}
}

func (o *LogObserver[N]) NodeSettled(e SettleEvent[N]) {
	if !o.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	o.logger.Debug("node settled",
		"node", e.Node,
		"step", e.Step,
		"g", e.G,
		"h", e.Priority-e.G,
		"f", e.Priority,
		"frontier", e.FrontierSize,
	)
}

func (o *LogObserver[N]) NeighborRelaxed(e RelaxEvent[N]) {
	if !o.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	o.logger.Debug("neighbor relaxed",
		"from", e.From,
		"to", e.To,
		"edge_cost", e.EdgeCost,
		"g", e.G,
		"h", e.H,
		"f", e.Priority,
		"seq", e.Sequence,
	)
}
