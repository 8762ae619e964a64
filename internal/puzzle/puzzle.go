// Package puzzle defines the capability implemented by each day's solution.
package puzzle

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoSolution marks a puzzle part that has not been solved yet. Every
// freshly scaffolded stub returns it from both parts.
var ErrNoSolution = errors.New("no solution found")

// Puzzle is implemented by one day's solution. Implementations locate
// and read their own input fixture; see Input.
type Puzzle interface {
	Part1() (Solution, error)
	Part2() (Solution, error)
}

// Input reads an input fixture into a string.
func Input(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
