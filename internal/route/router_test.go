package route

import (
	"testing"

	"github.com/okdaichi/metro/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    Router
		wantErr bool
	}{
		"default":  {name: "", want: breadthFirstRouter{}},
		"bfs":      {name: "bfs", want: breadthFirstRouter{}},
		"dijkstra": {name: "dijkstra", want: dijkstraRouter{}},
		"unknown":  {name: "astar", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewRouter(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDijkstraRouter_Route(t *testing.T) {
	g := newTestGraph(
		network.Link{From: "A~X", To: "D~X", Weight: 10},
		network.Link{From: "A~X", To: "B~X", Weight: 1},
		network.Link{From: "B~X", To: "D~X", Weight: 1},
	)

	p, err := NewDijkstraRouter().Route(g, "A~X", "D~X", Distance)
	require.NoError(t, err)
	assert.Equal(t, []string{"A~X", "B~X", "D~X"}, p.Stations)
	assert.Equal(t, 2, p.Distance)
	assert.Equal(t, 2*120+40*2, p.Time)
	assert.Equal(t, 2, p.Value)

	p, err = NewDijkstraRouter().Route(g, "A~X", "D~X", Time)
	require.NoError(t, err)
	assert.Equal(t, Minutes(2*120+40*2), p.Value)
}

func TestRouters_AgreeOnTree(t *testing.T) {
	// The sample network has no cycles, so both strategies find the only
	// path.
	g := loadDelhi(t)
	bfs, dij := NewBreadthFirstRouter(), NewDijkstraRouter()

	for _, metric := range []Mode{Distance, Time} {
		for _, src := range g.Stations() {
			for _, dst := range g.Stations() {
				a, err := bfs.Route(g, src, dst, metric)
				require.NoError(t, err)
				b, err := dij.Route(g, src, dst, metric)
				require.NoError(t, err)
				assert.Equal(t, a, b, "%s -> %s (%s)", src, dst, metric)
			}
		}
	}
}
