package network

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_SampleNetwork(t *testing.T) {
	g, err := LoadFile("../../configs/delhi-metro.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Delhi Metro", g.Name)
	assert.Equal(t, 20, g.NumVertices())
	assert.Equal(t, 19, g.NumEdges())
	assert.True(t, g.ContainsEdge("Rajiv Chowk~BY", "New Delhi~YO"))

	w, ok := g.Weight("DDS Campus~O", "IGI Airport~O")
	require.True(t, ok)
	assert.Equal(t, 8, w)
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	data := `
name: tiny
stations:
  - name: A
    lines: X
  - name: B
    lines: XY
edges:
  - from: A~X
    to: B~XY
    weight: 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	var src Source = NewFileSource(path)
	g, err := src.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"A~X", "B~XY"}, g.Stations())
	w, _ := g.Weight("B~XY", "A~X")
	assert.Equal(t, 3, w)
}

func TestLoadFile_NotExist(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("stations: [name: \"A"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestBuild_Invalid(t *testing.T) {
	stations := []Station{{Name: "A", Lines: "X"}, {Name: "B", Lines: "X"}}

	tests := map[string]Data{
		"missing lines": {
			Stations: []Station{{Name: "A"}},
		},
		"delimiter in name": {
			Stations: []Station{{Name: "A~B", Lines: "X"}},
		},
		"duplicate station": {
			Stations: []Station{{Name: "A", Lines: "X"}, {Name: "A", Lines: "X"}},
		},
		"unknown endpoint": {
			Stations: stations,
			Edges:    []Link{{From: "A~X", To: "C~X", Weight: 1}},
		},
		"self edge": {
			Stations: stations,
			Edges:    []Link{{From: "A~X", To: "A~X", Weight: 1}},
		},
		"zero weight": {
			Stations: stations,
			Edges:    []Link{{From: "A~X", To: "B~X"}},
		},
		"duplicate edge": {
			Stations: stations,
			Edges: []Link{
				{From: "A~X", To: "B~X", Weight: 1},
				{From: "B~X", To: "A~X", Weight: 2},
			},
		},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := Build(data)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}
