package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okdaichi/metro/internal/route"
)

// shell is the interactive numbered menu.
type shell struct {
	in      io.Reader
	out     io.Writer
	session *session

	scanner *bufio.Scanner
}

const menu = `
		~~LIST OF ACTIONS~~

1. LIST ALL THE STATIONS IN THE MAP
2. SHOW THE METRO MAP
3. GET SHORTEST DISTANCE FROM A 'SOURCE' STATION TO 'DESTINATION' STATION
4. GET SHORTEST TIME TO REACH FROM A 'SOURCE' STATION TO 'DESTINATION' STATION
5. GET INTERCHANGES OF A ROUTE
6. EXIT

ENTER THE NUMBER OF ACTION YOU WANT TO PERFORM: `

// run loops over the menu until the user exits, input ends or ctx is done.
func (sh *shell) run(ctx context.Context) error {
	sh.scanner = bufio.NewScanner(sh.in)
	fmt.Fprintln(sh.out, "\n\t\t****WELCOME TO THE METRO APP*****")

	for ctx.Err() == nil {
		fmt.Fprint(sh.out, menu)
		line, ok := sh.readLine()
		if !ok {
			fmt.Fprintln(sh.out)
			return sh.scanner.Err()
		}

		action, err := strconv.Atoi(line)
		if err != nil {
			action = 0
		}
		sh.session.logger.Debug("shell action", "action", action)

		switch action {
		case 1:
			printStations(sh.out, sh.session.graph)
		case 2:
			if err := printMap(sh.out, sh.session.graph); err != nil {
				return err
			}
		case 3:
			fmt.Fprintln(sh.out, "\n\t****FIND THE SHORTEST DISTANCE****")
			from, to, ok := sh.readStations()
			if !ok {
				return sh.scanner.Err()
			}
			sh.report(queryDistance(ctx, sh.out, sh.session.planner, from, to))
		case 4:
			fmt.Fprintln(sh.out, "\n\t****FIND THE SHORTEST TIME****")
			from, to, ok := sh.readStations()
			if !ok {
				return sh.scanner.Err()
			}
			sh.report(queryTime(ctx, sh.out, sh.session.planner, from, to))
		case 5:
			fmt.Fprintln(sh.out, "\n\t****GET INTERCHANGES OF A ROUTE****")
			fmt.Fprint(sh.out, "Enter the Stations separated by two spaces: ")
			text, ok := sh.readLine()
			if !ok {
				return sh.scanner.Err()
			}
			sh.report(queryInterchanges(ctx, sh.out, sh.session.planner, route.ParseRoute(text)))
		case 6:
			fmt.Fprintln(sh.out, "\n\t\t****THANK YOU FOR USING THE METRO APP*****")
			return nil
		default:
			fmt.Fprintln(sh.out, "\nPlease Enter a Valid Action Number")
		}
	}
	return ctx.Err()
}

func (sh *shell) readLine() (string, bool) {
	if !sh.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.scanner.Text()), true
}

func (sh *shell) readStations() (from, to string, ok bool) {
	fmt.Fprint(sh.out, "Enter the 'SOURCE' Station: ")
	if from, ok = sh.readLine(); !ok {
		return "", "", false
	}
	fmt.Fprint(sh.out, "Enter the 'DESTINATION' Station: ")
	if to, ok = sh.readLine(); !ok {
		return "", "", false
	}
	return from, to, true
}

// report prints errors the friendly messages did not already cover.
func (sh *shell) report(err error) {
	if err == nil || errors.Is(err, route.ErrStationNotFound) || errors.Is(err, route.ErrNoRoute) {
		return
	}
	fmt.Fprintf(sh.out, "error: %v\n", err)
}
