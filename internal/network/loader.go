package network

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidData is returned when network data cannot form a valid graph.
var ErrInvalidData = errors.New("invalid network data")

// Source abstracts where network data comes from.
// Implementations can target files, embedded assets, databases, etc.
type Source interface {
	// Load builds the graph described by the source.
	Load() (*Graph, error)
}

// Data is the serializable description of a network: its stations and the
// weighted links between them.
type Data struct {
	Name     string    `yaml:"name,omitempty"`
	Stations []Station `yaml:"stations"`
	Edges    []Link    `yaml:"edges"`
}

// Link is an undirected weighted connection between two stations, each
// referenced by its textual form.
type Link struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int    `yaml:"weight"`
}

// --- FileSource: YAML file-based implementation ---

// FileSource reads network data from a YAML file on disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource that reads the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and validates the file.
func (s *FileSource) Load() (*Graph, error) {
	return LoadFile(s.Path)
}

// LoadFile reads network data from a YAML file and builds the graph.
func LoadFile(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network file: %w", err)
	}
	defer file.Close()

	g, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// Load decodes YAML network data from r and builds the graph.
func Load(r io.Reader) (*Graph, error) {
	var data Data
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidData)
		}
		return nil, fmt.Errorf("decode network data: %w", err)
	}
	return Build(data)
}

// Build validates data and constructs the corresponding graph.
// Unlike the Graph mutators, it reports every inconsistency as an error
// instead of ignoring it.
func Build(data Data) (*Graph, error) {
	g := NewGraph()
	g.Name = data.Name

	for i, st := range data.Stations {
		if st.Name == "" || st.Lines == "" {
			return nil, fmt.Errorf("%w: station %d needs a name and lines", ErrInvalidData, i)
		}
		if strings.Contains(st.Name, Delimiter) || strings.Contains(st.Lines, Delimiter) {
			return nil, fmt.Errorf("%w: station %q must not contain %q", ErrInvalidData, st.Name, Delimiter)
		}
		key := st.String()
		if g.ContainsVertex(key) {
			return nil, fmt.Errorf("%w: duplicate station %q", ErrInvalidData, key)
		}
		g.AddVertex(key)
	}

	for i, l := range data.Edges {
		switch {
		case !g.ContainsVertex(l.From):
			return nil, fmt.Errorf("%w: edge %d: unknown station %q", ErrInvalidData, i, l.From)
		case !g.ContainsVertex(l.To):
			return nil, fmt.Errorf("%w: edge %d: unknown station %q", ErrInvalidData, i, l.To)
		case l.From == l.To:
			return nil, fmt.Errorf("%w: edge %d: self-edge on %q", ErrInvalidData, i, l.From)
		case l.Weight <= 0:
			return nil, fmt.Errorf("%w: edge %d: weight must be positive, got %d", ErrInvalidData, i, l.Weight)
		case g.ContainsEdge(l.From, l.To):
			return nil, fmt.Errorf("%w: edge %d: duplicate edge %q - %q", ErrInvalidData, i, l.From, l.To)
		}
		g.AddEdge(l.From, l.To, l.Weight)
	}

	return g, nil
}
