package scaffold

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingDay is returned when no DAY argument is supplied.
var ErrMissingDay = errors.New("missing argument DAY")

// ParseDay extracts the day identifier from positional arguments. The
// value must parse as a base-10 integer; its range is not checked, so
// zero and negative days are accepted.
func ParseDay(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrMissingDay
	}

	day, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid argument DAY: %s", args[0])
	}
	return day, nil
}
