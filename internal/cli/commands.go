package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/okdaichi/metro/internal/network"
	"github.com/okdaichi/metro/internal/route"
	"github.com/okdaichi/metro/internal/version"
)

// Messages shown for queries the network cannot answer.
const (
	msgInvalidStations = "Please Enter Valid Source and Destination Stations"
	msgNoRoute         = "Sorry! No Direct Route Found between %s and %s"
)

// RunStations lists every station, numbered.
func RunStations(args []string) error {
	return withSession("stations", args, nil, func(_ context.Context, s *session) error {
		printStations(stdout, s.graph)
		return nil
	})
}

// RunMap prints every station with its neighbors and edge weights.
func RunMap(args []string) error {
	return withSession("map", args, nil, func(_ context.Context, s *session) error {
		return printMap(stdout, s.graph)
	})
}

// RunDistance prints the shortest distance between two stations.
func RunDistance(args []string) error {
	var from, to string
	flags := func(fs flagSet) {
		fs.StringVar(&from, "from", "", "source station, e.g. \"Noida Sector 62~B\"")
		fs.StringVar(&to, "to", "", "destination station")
	}
	return withSession("distance", args, flags, func(ctx context.Context, s *session) error {
		return queryDistance(ctx, stdout, s.planner, from, to)
	})
}

// RunTime prints the minimum travel time between two stations and the path
// that achieves it.
func RunTime(args []string) error {
	var from, to, router string
	flags := func(fs flagSet) {
		fs.StringVar(&from, "from", "", "source station")
		fs.StringVar(&to, "to", "", "destination station")
		fs.StringVar(&router, "router", "", "path finder: bfs or dijkstra (default from config)")
	}
	return withSession("time", args, flags, func(ctx context.Context, s *session) error {
		if err := overrideRouter(s, router); err != nil {
			return err
		}
		return queryTime(ctx, stdout, s.planner, from, to)
	})
}

// RunRoute prints the path between two stations for the chosen metric.
func RunRoute(args []string) error {
	var from, to, metric, router string
	var annotate bool
	flags := func(fs flagSet) {
		fs.StringVar(&from, "from", "", "source station")
		fs.StringVar(&to, "to", "", "destination station")
		fs.StringVar(&metric, "metric", "distance", "metric to minimize: distance or time")
		fs.StringVar(&router, "router", "", "path finder: bfs or dijkstra (default from config)")
		fs.BoolVar(&annotate, "interchanges", false, "also list the interchanges along the route")
	}
	return withSession("route", args, flags, func(ctx context.Context, s *session) error {
		mode, err := route.ParseMode(metric)
		if err != nil {
			return err
		}
		if err := overrideRouter(s, router); err != nil {
			return err
		}

		p, err := s.planner.Route(ctx, from, to, mode)
		if err != nil {
			return explain(stdout, err, from, to)
		}
		fmt.Fprintln(stdout, p.String())

		if !annotate {
			return nil
		}
		a, err := s.planner.Interchanges(ctx, p.Stations)
		if err != nil {
			return err
		}
		printInterchanges(stdout, a)
		return nil
	})
}

// RunInterchanges annotates a route given with -route (stations separated
// by two spaces) or as positional arguments.
func RunInterchanges(args []string) error {
	var text string
	flags := func(fs flagSet) {
		fs.StringVar(&text, "route", "", "stations separated by two spaces, as printed by the route command")
	}
	return withSessionArgs("interchanges", args, flags, func(ctx context.Context, s *session, rest []string) error {
		stations := rest
		if text != "" {
			stations = route.ParseRoute(text)
		}
		return queryInterchanges(ctx, stdout, s.planner, stations)
	})
}

// RunShell runs the interactive menu on stdin and stdout.
func RunShell(args []string) error {
	return withSession("shell", args, nil, func(ctx context.Context, s *session) error {
		return (&shell{in: stdin, out: stdout, session: s}).run(ctx)
	})
}

// RunVersion prints build metadata.
func RunVersion(args []string) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(stderr)
	short := fs.Bool("short", false, "print the version on one line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	info := version.Get()
	if *short {
		fmt.Fprintln(stdout, info.Short())
	} else {
		fmt.Fprintln(stdout, info)
	}
	return nil
}

// flagSet is the subset of *flag.FlagSet commands register flags with.
type flagSet interface {
	StringVar(p *string, name, value, usage string)
	BoolVar(p *bool, name string, value bool, usage string)
}

func withSession(name string, args []string, flags func(flagSet), fn func(context.Context, *session) error) error {
	return withSessionArgs(name, args, flags, func(ctx context.Context, s *session, rest []string) error {
		if len(rest) > 0 {
			return fmt.Errorf("%s: unexpected arguments: %s", name, strings.Join(rest, " "))
		}
		return fn(ctx, s)
	})
}

// withSessionArgs parses args, opens a session and runs fn with the
// remaining positional arguments. The context is cancelled on SIGINT or
// SIGTERM.
func withSessionArgs(name string, args []string, flags func(flagSet), fn func(context.Context, *session, []string) error) error {
	fs, configFile := newFlagSet(name)
	if flags != nil {
		flags(fs)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, closeFn, err := openSession(ctx, *configFile)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(ctx, s, fs.Args())
}

func overrideRouter(s *session, name string) error {
	if name == "" {
		return nil
	}
	r, err := route.NewRouter(name)
	if err != nil {
		return err
	}
	s.planner.Router = r
	return nil
}

func queryDistance(ctx context.Context, w io.Writer, p *route.Planner, from, to string) error {
	km, err := p.Distance(ctx, from, to)
	if err != nil {
		return explain(w, err, from, to)
	}
	fmt.Fprintf(w, "The Shortest Distance between %s and %s is %d km\n", from, to, km)
	return nil
}

func queryTime(ctx context.Context, w io.Writer, p *route.Planner, from, to string) error {
	path, err := p.Time(ctx, from, to)
	if err != nil {
		return explain(w, err, from, to)
	}
	fmt.Fprintf(w, "The Minimum Time to reach %s to %s is %d minutes\n", from, to, path.Value)
	fmt.Fprintf(w, "Route: %s\n", strings.Join(path.Stations, route.Separator))
	return nil
}

func queryInterchanges(ctx context.Context, w io.Writer, p *route.Planner, stations []string) error {
	a, err := p.Interchanges(ctx, stations)
	if err != nil {
		return err
	}
	printInterchanges(w, a)
	return nil
}

// explain prints the friendly message for a query the network cannot
// answer and returns err so the caller still fails.
func explain(w io.Writer, err error, from, to string) error {
	switch {
	case errors.Is(err, route.ErrStationNotFound):
		fmt.Fprintln(w, msgInvalidStations)
	case errors.Is(err, route.ErrNoRoute):
		fmt.Fprintf(w, msgNoRoute+"\n", from, to)
	}
	return err
}

func printStations(w io.Writer, g *network.Graph) {
	for i, name := range g.Stations() {
		fmt.Fprintf(w, "%d. %s\n", i+1, name)
	}
}

func printMap(w io.Writer, g *network.Graph) error {
	title := g.Name
	if title == "" {
		title = "Metro Map"
	} else {
		title += " Map"
	}
	fmt.Fprintf(w, "\t%s\n\t%s\n", title, strings.Repeat("-", len(title)))

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, name := range g.Stations() {
		fmt.Fprintf(tw, "%s =>\n", name)
		for _, nb := range g.Neighbors(name) {
			fmt.Fprintf(tw, "\t%s\t%d\n", nb.Name, nb.Weight)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\t%s\n", strings.Repeat("-", len(title)))
	return nil
}

func printInterchanges(w io.Writer, a route.Annotation) {
	fmt.Fprintln(w, "Interchanges:")
	for _, line := range a.Lines() {
		fmt.Fprintln(w, line)
	}
}
