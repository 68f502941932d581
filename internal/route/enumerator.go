package route

import (
	"strconv"
	"strings"

	"github.com/okdaichi/metro/internal/network"
)

// Separator joins station names in the textual form of a path.
const Separator = "  "

// Path is a route found by ShortestPath.
type Path struct {
	Stations []string
	Distance int // km along Stations
	Time     int // seconds along Stations
	Metric   Mode

	// Value is the winning metric: Distance, or Time in whole minutes
	// rounded up.
	Value int
}

// String renders the path as the station names joined by Separator,
// followed by Value.
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p.Stations {
		b.WriteString(s)
		b.WriteString(Separator)
	}
	b.WriteString(strconv.Itoa(p.Value))
	return b.String()
}

// hop is a search node: a partial path ending at station.
type hop struct {
	station  string
	path     []string
	distance int
	time     int
}

// ShortestPath searches breadth-first from src and returns the path to dst
// with the lowest metric among the completed candidates.
//
// A station is processed the first time it is dequeued and every later
// node for it is discarded, so the result follows enqueue order rather
// than cost order and is not guaranteed minimal on weighted networks.
// Neighbors are expanded in name order.
func ShortestPath(g *network.Graph, src, dst string, metric Mode) (Path, error) {
	if !g.ContainsVertex(src) || !g.ContainsVertex(dst) {
		return Path{}, ErrStationNotFound
	}

	var (
		best      hop
		found     bool
		processed = make(map[string]bool, g.NumVertices())
		queue     = []hop{{station: src, path: []string{src}}}
	)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if processed[cur.station] {
			continue
		}
		processed[cur.station] = true

		if cur.station == dst {
			if !found || cost(cur, metric) < cost(best, metric) {
				best, found = cur, true
			}
			continue
		}

		for _, nb := range g.Neighbors(cur.station) {
			if processed[nb.Name] {
				continue
			}
			path := make([]string, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			queue = append(queue, hop{
				station:  nb.Name,
				path:     append(path, nb.Name),
				distance: cur.distance + Distance.EdgeCost(nb.Weight),
				time:     cur.time + Time.EdgeCost(nb.Weight),
			})
		}
	}

	if !found {
		return Path{}, ErrNoRoute
	}

	p := Path{
		Stations: best.path,
		Distance: best.distance,
		Time:     best.time,
		Metric:   metric,
		Value:    best.distance,
	}
	if metric == Time {
		p.Value = Minutes(best.time)
	}
	return p, nil
}

func cost(h hop, metric Mode) int {
	if metric == Time {
		return h.time
	}
	return h.distance
}
