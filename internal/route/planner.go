package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/okdaichi/metro/internal/network"
	"github.com/okdaichi/metro/observability"
)

// Planner answers journey queries over a network.
//
// Before searching, the Planner checks that both stations exist and that
// they are connected, so the solvers only run on answerable queries. Each
// query is traced, counted and logged.
//
// Example:
//
//	p := &Planner{
//	  Graph:  g,
//	  Router: NewDijkstraRouter(),
//	}
//	km, err := p.Distance(ctx, "Noida Sector 62~B", "Rajiv Chowk~BY")
type Planner struct {
	Graph *network.Graph

	// Router finds literal paths. If nil, uses the breadth-first router.
	Router Router

	// Logger receives query logs. If nil, uses slog.Default().
	Logger *slog.Logger
}

// NewPlanner creates a Planner with the default router and logger.
func NewPlanner(g *network.Graph) *Planner {
	return &Planner{Graph: g}
}

// Distance returns the shortest distance in km from src to dst.
func (p *Planner) Distance(ctx context.Context, src, dst string) (int, error) {
	return p.Cost(ctx, src, dst, Distance)
}

// Cost returns the minimal cost from src to dst under mode.
func (p *Planner) Cost(ctx context.Context, src, dst string, mode Mode) (cost int, err error) {
	kind := mode.String()
	ctx, span := observability.Start(ctx, "route.cost",
		observability.From(src), observability.To(dst), observability.Metric(kind))
	defer p.finish(ctx, span, kind, time.Now(), &err)

	if err := p.check(src, dst); err != nil {
		return Unreachable, err
	}
	cost, err = ShortestCost(p.Graph, src, dst, mode)
	if err != nil {
		return cost, err
	}
	span.Set(observability.Cost(cost))
	p.logger().DebugContext(ctx, "cost computed", "from", src, "to", dst, "metric", kind, "cost", cost)
	return cost, nil
}

// Route returns the path from src to dst chosen by the Router for metric.
func (p *Planner) Route(ctx context.Context, src, dst string, metric Mode) (path Path, err error) {
	kind := "route." + metric.String()
	ctx, span := observability.Start(ctx, "route.path",
		observability.From(src), observability.To(dst), observability.Metric(metric.String()))
	defer p.finish(ctx, span, kind, time.Now(), &err)

	if err := p.check(src, dst); err != nil {
		return Path{}, err
	}
	path, err = p.router().Route(p.Graph, src, dst, metric)
	if err != nil {
		return Path{}, err
	}
	span.Set(observability.Cost(path.Value), observability.Hops(len(path.Stations)))
	p.logger().DebugContext(ctx, "route found",
		"from", src, "to", dst, "metric", metric.String(),
		"stations", len(path.Stations), "value", path.Value)
	return path, nil
}

// Time returns the minimum-time path from src to dst; Path.Value is in
// minutes.
func (p *Planner) Time(ctx context.Context, src, dst string) (Path, error) {
	return p.Route(ctx, src, dst, Time)
}

// Interchanges annotates the line changes along stations.
func (p *Planner) Interchanges(ctx context.Context, stations []string) (a Annotation, err error) {
	ctx, span := observability.Start(ctx, "route.interchanges", observability.Hops(len(stations)))
	defer p.finish(ctx, span, "interchanges", time.Now(), &err)

	a, err = Annotate(stations)
	if err != nil {
		return Annotation{}, err
	}
	p.logger().DebugContext(ctx, "route annotated", "stations", len(stations), "stops", len(a.Stops))
	return a, nil
}

// check validates a point-to-point query before any search runs.
func (p *Planner) check(src, dst string) error {
	for _, s := range []string{src, dst} {
		if !p.Graph.ContainsVertex(s) {
			return fmt.Errorf("%w: %q", ErrStationNotFound, s)
		}
	}
	if src != dst && !p.Graph.HasPath(src, dst) {
		return fmt.Errorf("%w: %q and %q", ErrNoRoute, src, dst)
	}
	return nil
}

// finish ends the span and records the query outcome.
func (p *Planner) finish(ctx context.Context, span *observability.Span, kind string, start time.Time, errp *error) {
	err := *errp
	outcome := outcomeOf(err)
	observability.NewRecorder(kind).Query(time.Since(start), outcome)
	if err != nil {
		span.Error(err, outcome)
		p.logger().WarnContext(ctx, "query failed", "kind", kind, "outcome", outcome, "error", err)
	}
	span.End()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeOK
	case errors.Is(err, ErrStationNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, ErrNoRoute):
		return observability.OutcomeNoRoute
	default:
		return observability.OutcomeError
	}
}

func (p *Planner) router() Router {
	if p.Router == nil {
		return NewBreadthFirstRouter()
	}
	return p.Router
}

func (p *Planner) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
