package flatten

import (
	"log/slog"

	"github.com/LegacyCodeHQ/solflat/compilation"
	"github.com/LegacyCodeHQ/solflat/depgraph"
)

// Option configures FlattenTarget.
type Option func(*options)

type options struct {
	build  []depgraph.BuildOption
	logger *slog.Logger
}

// WithMaxDepth bounds the length of import chains followed while flattening.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.build = append(o.build, depgraph.WithMaxDepth(depth))
	}
}

// WithLogger sets the logger used to report import cycles.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Output is a flattened target together with the graph and order that produced it.
type Output struct {
	Text   string
	Graph  *depgraph.DependencyGraph
	Order  []string
	Cycles [][]string
}

// FlattenTarget flattens result.Target and everything it transitively imports.
func FlattenTarget(result compilation.Result, opts ...Option) (string, error) {
	out, err := FlattenTargetWithGraph(result, opts...)
	if err != nil {
		return "", err
	}
	return out.Text, nil
}

// FlattenTargetWithGraph is FlattenTarget but also returns the intermediate graph and order.
func FlattenTargetWithGraph(result compilation.Result, opts ...Option) (Output, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	files := result.FileMap()
	graph, err := depgraph.BuildDependencyGraph(result.Target, files, o.build...)
	if err != nil {
		return Output{}, err
	}

	cycles, err := graph.Cycles()
	if err != nil {
		return Output{}, err
	}
	for _, cycle := range cycles {
		o.logger.Warn("circular imports; output order within the cycle is best effort",
			"target", result.Target,
			"files", cycle)
	}

	order := depgraph.Order(graph)
	o.logger.Debug("flattening target",
		"target", result.Target,
		"files", len(order),
		"edges", len(graph.Edges()))

	text, err := Flatten(order, files.Sources())
	if err != nil {
		return Output{}, err
	}

	return Output{
		Text:   text,
		Graph:  graph,
		Order:  order,
		Cycles: cycles,
	}, nil
}
