package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/okdaichi/metro/internal/network"
)

// ErrRouteTooShort is returned by Annotate for a route with fewer than two
// stations.
var ErrRouteTooShort = errors.New("route needs a source and a destination")

// ChangeMarker links an interchange to the next station when the line
// changes there.
const ChangeMarker = " ==> "

// Annotation describes the line changes along a route.
type Annotation struct {
	// Stops lists the interior stations. A line change is rendered as
	// "<interchange> ==> <next station>" and consumes the next station.
	Stops       []string
	Destination string
	// Count is len(Stops)-1, floored at zero.
	Count  int
	Source string
}

// Lines renders the annotation as the flat listing printed by the tool:
// the stops, the destination, the count, then the source.
func (a Annotation) Lines() []string {
	out := make([]string, 0, len(a.Stops)+3)
	out = append(out, a.Stops...)
	return append(out, a.Destination, strconv.Itoa(a.Count), a.Source)
}

// ParseRoute splits the textual form of a path into station names.
// Stations are separated by Separator; input without it is split on single
// spaces, which only works for names without blanks. A trailing metric
// value, as printed by Path.String, is dropped.
func ParseRoute(s string) []string {
	sep := Separator
	if !strings.Contains(s, sep) {
		sep = " "
	}
	var out []string
	for _, tok := range strings.Split(s, sep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	if n := len(out); n > 0 && !strings.Contains(out[n-1], network.Delimiter) {
		if _, err := strconv.Atoi(out[n-1]); err == nil {
			out = out[:n-1]
		}
	}
	return out
}

// Annotate marks where a traveler changes lines along stations.
//
// An interior station served by exactly two lines is a change point when
// the stations before and after it carry different line codes; otherwise
// it is a plain stop. Every station must use the "<name>~<codes>" form.
func Annotate(stations []string) (Annotation, error) {
	if len(stations) < 2 {
		return Annotation{}, ErrRouteTooShort
	}

	parsed := make([]network.Station, len(stations))
	for i, s := range stations {
		st, err := network.ParseStation(s)
		if err != nil {
			return Annotation{}, fmt.Errorf("annotate route: %w", err)
		}
		parsed[i] = st
	}

	var stops []string
	last := len(stations) - 1
	for i := 1; i < last; i++ {
		if len(parsed[i].Lines) != 2 || parsed[i-1].Lines == parsed[i+1].Lines {
			stops = append(stops, stations[i])
			continue
		}
		stops = append(stops, stations[i]+ChangeMarker+stations[i+1])
		i++
	}

	return Annotation{
		Stops:       stops,
		Destination: stations[last],
		Count:       max(len(stops)-1, 0),
		Source:      stations[0],
	}, nil
}
