package route

import "fmt"

// Mode selects the cost model of a query.
type Mode int

const (
	// Distance costs an edge by its raw weight (km).
	Distance Mode = iota
	// Time costs an edge as a fixed dwell plus a weight-proportional run,
	// in seconds.
	Time
)

const (
	dwellSeconds   = 120
	secondsPerUnit = 40
)

// EdgeCost returns the cost of traversing an edge of weight w under m.
func (m Mode) EdgeCost(w int) int {
	if m == Time {
		return dwellSeconds + secondsPerUnit*w
	}
	return w
}

func (m Mode) String() string {
	switch m {
	case Distance:
		return "distance"
	case Time:
		return "time"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "distance" or "time".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "distance":
		return Distance, nil
	case "time":
		return Time, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (want distance or time)", s)
	}
}

// Minutes converts seconds to whole minutes, rounding up.
func Minutes(seconds int) int {
	return (seconds + 59) / 60
}
