// Package engine is the primary API for building evaluation.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shadowcost/core/catalog"
	"shadowcost/core/determinism"
	"shadowcost/core/geometry"
	"shadowcost/core/guards"
	"shadowcost/core/pricing"
	"shadowcost/core/types"
)

// Engine generates and prices buildings. It holds no per-building state and
// is safe for concurrent use.
type Engine struct {
	logger  *zap.Logger
	version string
}

// New creates an engine. A nil logger disables logging.
func New(logger *zap.Logger, version string) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, version: version}
}

// Result is the output of one evaluation
type Result struct {
	// Parameters are the inputs as evaluated
	Parameters types.BuildingParameters `json:"parameters" yaml:"parameters"`

	// InputHash identifies the parameters
	InputHash determinism.ContentHash `json:"input_hash" yaml:"input_hash"`

	Building *geometry.Building `json:"building" yaml:"building"`
	Prices   *pricing.Breakdown `json:"prices" yaml:"prices"`

	// Metadata
	Version     string        `json:"version" yaml:"version"`
	EvaluatedAt time.Time     `json:"evaluated_at" yaml:"evaluated_at"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
}

// Evaluate generates the building for p and prices it
func (e *Engine) Evaluate(ctx context.Context, p types.BuildingParameters) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	building, err := geometry.Generate(p)
	if err != nil {
		e.logger.Debug("generation rejected", zap.String("material", p.Material), zap.Error(err))
		return nil, err
	}

	prices, err := pricing.ComputeBuilding(building)
	if err != nil {
		e.logger.Warn("pricing failed", zap.String("material", p.Material), zap.Error(err))
		return nil, err
	}

	if err := guards.Check(p, building, prices); err != nil {
		e.logger.Error("invariant violated", zap.String("material", p.Material), zap.Error(err))
		return nil, err
	}

	hash, err := determinism.HashJSON(p)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Parameters:  p,
		InputHash:   hash,
		Building:    building,
		Prices:      prices,
		Version:     e.version,
		EvaluatedAt: start.UTC(),
		Duration:    time.Since(start),
	}

	e.logger.Debug("building evaluated",
		zap.String("material", p.Material),
		zap.Int("slabs", len(building.Slabs)),
		zap.Int("columns", len(building.Columns)),
		zap.String("total", prices.Total.StringFixed(2)),
		zap.Stringer("input_hash", hash),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

// Compare evaluates the dimensions of p once per construction system.
// The material in p is ignored. Results follow catalog.Systems() order.
func (e *Engine) Compare(ctx context.Context, p types.BuildingParameters) ([]*Result, error) {
	systems := catalog.Systems()
	results := make([]*Result, len(systems))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range systems {
		i := i
		params := p
		params.Material = s.String()
		g.Go(func() error {
			r, err := e.Evaluate(ctx, params)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug("systems compared", zap.Int("count", len(results)))
	return results, nil
}
