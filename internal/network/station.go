package network

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates a station's display name from its line codes in the
// textual form "Rajiv Chowk~BY".
const Delimiter = "~"

// ErrMalformedStation is returned when a station name cannot be split into
// a display name and line codes.
var ErrMalformedStation = errors.New("malformed station name")

// Station is a stop in the transit network.
// Lines holds one single-character code per line serving the station.
type Station struct {
	Name  string `yaml:"name"`
	Lines string `yaml:"lines"`
}

// ParseStation splits the textual form "<name>~<codes>" into a Station.
func ParseStation(s string) (Station, error) {
	i := strings.Index(s, Delimiter)
	if i < 0 {
		return Station{}, fmt.Errorf("%w: %q has no %q delimiter", ErrMalformedStation, s, Delimiter)
	}
	st := Station{Name: s[:i], Lines: s[i+len(Delimiter):]}
	if st.Name == "" || st.Lines == "" {
		return Station{}, fmt.Errorf("%w: %q", ErrMalformedStation, s)
	}
	return st, nil
}

// String returns the textual form used as the station's graph key.
func (s Station) String() string {
	return s.Name + Delimiter + s.Lines
}
