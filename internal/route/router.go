package route

import (
	"fmt"

	"github.com/okdaichi/metro/internal/network"
)

// Router abstracts the path-finding strategy behind Planner.Route.
type Router interface {
	// Route finds a path from src to dst that minimizes metric.
	Route(g *network.Graph, src, dst string, metric Mode) (Path, error)
}

// NewBreadthFirstRouter returns the Router backed by ShortestPath.
func NewBreadthFirstRouter() Router {
	return breadthFirstRouter{}
}

// NewDijkstraRouter returns a Router backed by Solve, which always finds a
// minimal path.
func NewDijkstraRouter() Router {
	return dijkstraRouter{}
}

// NewRouter returns the router registered under name ("bfs" or "dijkstra").
func NewRouter(name string) (Router, error) {
	switch name {
	case "", "bfs":
		return NewBreadthFirstRouter(), nil
	case "dijkstra":
		return NewDijkstraRouter(), nil
	default:
		return nil, fmt.Errorf("unknown router %q (want bfs or dijkstra)", name)
	}
}

type breadthFirstRouter struct{}

func (breadthFirstRouter) Route(g *network.Graph, src, dst string, metric Mode) (Path, error) {
	return ShortestPath(g, src, dst, metric)
}

type dijkstraRouter struct{}

func (dijkstraRouter) Route(g *network.Graph, src, dst string, metric Mode) (Path, error) {
	res, err := Solve(g, src, dst, metric)
	if err != nil {
		return Path{}, err
	}

	p := Path{Stations: res.Stations, Metric: metric}
	for i := 1; i < len(res.Stations); i++ {
		w, _ := g.Weight(res.Stations[i-1], res.Stations[i])
		p.Distance += Distance.EdgeCost(w)
		p.Time += Time.EdgeCost(w)
	}
	p.Value = p.Distance
	if metric == Time {
		p.Value = Minutes(p.Time)
	}
	return p, nil
}
