package engine

import (
	"context"

	"github.com/ldevran/grep-tui/internal/config"
	"github.com/ldevran/grep-tui/internal/model"
)

// Engine runs the whole search pipeline: query expansion, process
// invocation, output parsing, and duplicate collapsing. Each Search call
// is independent; nothing persists between requests.
type Engine struct {
	runner *Runner
}

func New(cfg config.Config) (*Engine, error) {
	runner, err := NewRunner(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{runner: runner}, nil
}

// Search runs one request in the given mode and returns the collapsed
// matches in engine output order. A failed sub-query aborts the whole
// search, including sub-queries not yet run.
func (e *Engine) Search(ctx context.Context, mode model.Mode, req model.Request) ([]model.Match, error) {
	if len(req.Roots) == 0 {
		return nil, config.ErrNoSearchRoots
	}

	switch mode {
	case model.ModeHaskell:
		plan, err := PlanDefinitions(req.Query)
		if err != nil {
			return nil, err
		}
		matches, err := e.runPlan(ctx, plan, req.Roots)
		if err != nil {
			return nil, err
		}
		// Definitions are sparse, so adjacent-line hits are almost
		// always one multi-line definition reported line by line.
		return Collapse(matches, true), nil

	default:
		matches, err := e.runOne(ctx, req.Query, req.Roots)
		if err != nil {
			return nil, err
		}
		return Collapse(matches, false), nil
	}
}

// runPlan executes each sub-query as an independent full search, in plan
// order, and concatenates the results. Cross-sub-query duplicates are
// left to the adjacency filter on the combined stream.
func (e *Engine) runPlan(ctx context.Context, plan model.Plan, roots []string) ([]model.Match, error) {
	var all []model.Match
	for _, sub := range plan {
		matches, err := e.runOne(ctx, sub.Pattern, roots)
		if err != nil {
			return nil, err
		}
		all = append(all, matches...)
	}
	return all, nil
}

func (e *Engine) runOne(ctx context.Context, query string, roots []string) ([]model.Match, error) {
	lines, err := e.runner.Run(ctx, query, roots)
	if err != nil {
		return nil, err
	}
	return parseLines(lines)
}
