package route

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/okdaichi/metro/internal/network"
	"github.com/okdaichi/metro/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T, g *network.Graph) (*Planner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &Planner{
		Graph:  g,
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}, &buf
}

func TestPlanner_Distance(t *testing.T) {
	p, logs := newTestPlanner(t, loadDelhi(t))

	km, err := p.Distance(t.Context(), noida, rajiv)
	require.NoError(t, err)
	assert.Equal(t, 24, km)
	assert.Contains(t, logs.String(), "cost computed")
}

func TestPlanner_Cost(t *testing.T) {
	p, _ := newTestPlanner(t, loadDelhi(t))

	sec, err := p.Cost(t.Context(), rajiv, newDelhi, Time)
	require.NoError(t, err)
	assert.Equal(t, 160, sec)
}

func TestPlanner_Time(t *testing.T) {
	p, logs := newTestPlanner(t, loadDelhi(t))

	path, err := p.Time(t.Context(), noida, igiAirport)
	require.NoError(t, err)
	assert.Equal(t, 42, path.Value)
	assert.Equal(t, Time, path.Metric)
	assert.Len(t, path.Stations, 8)
	assert.Contains(t, logs.String(), "route found")
}

func TestPlanner_Route_WithRouter(t *testing.T) {
	g := newTestGraph(
		network.Link{From: "A~X", To: "D~X", Weight: 10},
		network.Link{From: "A~X", To: "B~X", Weight: 1},
		network.Link{From: "B~X", To: "D~X", Weight: 1},
	)

	tests := map[string]struct {
		router Router
		want   int
	}{
		"default is breadth first": {router: nil, want: 10},
		"dijkstra":                 {router: NewDijkstraRouter(), want: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, _ := newTestPlanner(t, g)
			p.Router = tt.router

			path, err := p.Route(t.Context(), "A~X", "D~X", Distance)
			require.NoError(t, err)
			assert.Equal(t, tt.want, path.Value)
		})
	}
}

func TestPlanner_Errors(t *testing.T) {
	g := newTestGraph(
		network.Link{From: "A~X", To: "B~X", Weight: 1},
		network.Link{From: "C~Y", To: "D~Y", Weight: 1},
	)
	g.AddVertex("E~Z")

	tests := map[string]struct {
		src, dst string
		wantErr  error
	}{
		"unknown source":      {src: "Z~X", dst: "B~X", wantErr: ErrStationNotFound},
		"unknown destination": {src: "A~X", dst: "Z~X", wantErr: ErrStationNotFound},
		"disconnected":        {src: "A~X", dst: "D~Y", wantErr: ErrNoRoute},
		"isolated station":    {src: "E~Z", dst: "A~X", wantErr: ErrNoRoute},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, logs := newTestPlanner(t, g)

			cost, err := p.Distance(t.Context(), tt.src, tt.dst)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Unreachable, cost)

			_, err = p.Route(t.Context(), tt.src, tt.dst, Time)
			assert.ErrorIs(t, err, tt.wantErr)

			assert.Contains(t, logs.String(), "query failed")
		})
	}
}

func TestPlanner_SameIsolatedStation(t *testing.T) {
	g := network.NewGraph()
	g.AddVertex("E~Z")
	p, _ := newTestPlanner(t, g)

	cost, err := p.Distance(t.Context(), "E~Z", "E~Z")
	require.NoError(t, err)
	assert.Equal(t, 0, cost)

	path, err := p.Time(t.Context(), "E~Z", "E~Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"E~Z"}, path.Stations)
}

func TestPlanner_Interchanges(t *testing.T) {
	p, _ := newTestPlanner(t, loadDelhi(t))

	a, err := p.Interchanges(t.Context(), []string{"A~X", "B~XY", "C~Y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B~XY ==> C~Y"}, a.Stops)

	_, err = p.Interchanges(t.Context(), []string{"A~X"})
	assert.ErrorIs(t, err, ErrRouteTooShort)
}

func TestPlanner_DefaultLogger(t *testing.T) {
	p := NewPlanner(loadDelhi(t))

	km, err := p.Distance(t.Context(), noida, igiAirport)
	require.NoError(t, err)
	assert.Equal(t, 42, km)
}

func TestPlanner_RecordsMetrics(t *testing.T) {
	require.NoError(t, observability.Setup(t.Context(), observability.Config{Metrics: true}))
	defer observability.Shutdown(t.Context())

	p, _ := newTestPlanner(t, loadDelhi(t))
	_, err := p.Distance(t.Context(), noida, rajiv)
	require.NoError(t, err)
	_, err = p.Distance(t.Context(), noida, "Nowhere~Q")
	require.Error(t, err)

	families, err := observability.Registry().Gather()
	require.NoError(t, err)

	counts := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "metro_queries_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var kind, outcome string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "kind":
					kind = l.GetValue()
				case "outcome":
					outcome = l.GetValue()
				}
			}
			counts[kind+"/"+outcome] = m.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 1.0, counts["distance/ok"])
	assert.Equal(t, 1.0, counts["distance/not_found"])
}
