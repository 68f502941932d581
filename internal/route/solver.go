package route

import (
	"errors"
	"math"

	"github.com/okdaichi/metro/internal/network"
	"github.com/okdaichi/metro/internal/pqueue"
)

var (
	// ErrStationNotFound is returned when a query names a station that is not
	// in the network.
	ErrStationNotFound = errors.New("station not found")

	// ErrNoRoute is returned when the two stations are not connected.
	ErrNoRoute = errors.New("no route between stations")
)

// Unreachable is the cost reported when no route exists.
const Unreachable = math.MaxInt

// Result is the answer of the shortest-cost solver.
type Result struct {
	Stations []string // source first, destination last
	Cost     int
}

// ShortestCost returns the minimal cost from src to dst under mode.
// On any error the cost is Unreachable: ErrNoRoute when dst cannot be
// reached, ErrStationNotFound when either station is unknown.
func ShortestCost(g *network.Graph, src, dst string, mode Mode) (int, error) {
	res, err := Solve(g, src, dst, mode)
	if err != nil {
		return Unreachable, err
	}
	return res.Cost, nil
}

// Solve computes the cheapest route from src to dst with Dijkstra's
// algorithm over an indexed priority queue.
//
// Every station is queued up front keyed by its best known cost; relaxing
// an edge lowers the key in place, so the queue never holds duplicates.
// The search stops as soon as dst is extracted.
func Solve(g *network.Graph, src, dst string, mode Mode) (Result, error) {
	if !g.ContainsVertex(src) || !g.ContainsVertex(dst) {
		return Result{Cost: Unreachable}, ErrStationNotFound
	}

	stations := g.Stations()
	best := make(map[string]int, len(stations))
	prev := make(map[string]string, len(stations))
	for _, s := range stations {
		best[s] = Unreachable
	}
	best[src] = 0

	pq := pqueue.NewMin(func(s string) int { return best[s] })
	for _, s := range stations {
		pq.Insert(s)
	}

	for !pq.IsEmpty() {
		u := pq.ExtractTop()
		if best[u] == Unreachable {
			break // the rest of the queue is disconnected from src
		}
		if u == dst {
			return Result{Stations: trace(prev, src, dst), Cost: best[u]}, nil
		}

		for _, nb := range g.Neighbors(u) {
			if !pq.Contains(nb.Name) {
				continue // settled
			}
			alt := best[u] + mode.EdgeCost(nb.Weight)
			if alt < best[nb.Name] {
				best[nb.Name] = alt
				prev[nb.Name] = u
				pq.UpdatePriority(nb.Name)
			}
		}
	}

	return Result{Cost: Unreachable}, ErrNoRoute
}

// trace walks the predecessor chain back from dst.
func trace(prev map[string]string, src, dst string) []string {
	path := []string{dst}
	for at := dst; at != src; {
		at = prev[at]
		path = append(path, at)
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
