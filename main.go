package main

import (
	"fmt"
	"os"

	"github.com/okdaichi/metro/internal/cli"
)

var (
	// overridable command handlers for easier unit-testing
	runStations     = cli.RunStations
	runMap          = cli.RunMap
	runDistance     = cli.RunDistance
	runTime         = cli.RunTime
	runRoute        = cli.RunRoute
	runInterchanges = cli.RunInterchanges
	runShell        = cli.RunShell
	runVersion      = cli.RunVersion
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command logic and returns an exit code (0 = success).
// Keeping this function small makes unit-testing straightforward.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	cmd := args[0]
	cmdArgs := args[1:]

	var err error
	switch cmd {
	case "stations":
		err = runStations(cmdArgs)
	case "map":
		err = runMap(cmdArgs)
	case "distance":
		err = runDistance(cmdArgs)
	case "time":
		err = runTime(cmdArgs)
	case "route":
		err = runRoute(cmdArgs)
	case "interchanges":
		err = runInterchanges(cmdArgs)
	case "shell":
		err = runShell(cmdArgs)
	case "version":
		err = runVersion(cmdArgs)
	case "help", "-h", "-help", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage()
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: metro <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  stations       List all stations")
	fmt.Fprintln(os.Stderr, "  map            Show the network map")
	fmt.Fprintln(os.Stderr, "  distance       Shortest distance between two stations (-from, -to)")
	fmt.Fprintln(os.Stderr, "  time           Minimum travel time between two stations (-from, -to)")
	fmt.Fprintln(os.Stderr, "  route          Path between two stations (-from, -to, -metric, -router)")
	fmt.Fprintln(os.Stderr, "  interchanges   Line changes along a route (-route or stations as args)")
	fmt.Fprintln(os.Stderr, "  shell          Interactive menu")
	fmt.Fprintln(os.Stderr, "  version        Print version information")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -config string   path to config file")
	fmt.Fprintln(os.Stderr, "                   default: $METRO_CONFIG, then configs/config.metro.yaml")
}
