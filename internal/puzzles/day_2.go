/*
** internal/puzzles/day_2.go
** https://adventofcode.com/2021/day/2
*/

package puzzles

import (
	"github.com/example/aoc/internal/puzzle"
)

// day2Input locates the day 2 fixture, relative to the project root.
const day2Input = "input/2.txt"

// Day2 solves the day 2 puzzle.
type Day2 struct{}

// NewDay2 constructs the day 2 puzzle.
func NewDay2() *Day2 {
	return &Day2{}
}

// [QUESTION]
func (p *Day2) Part1() (puzzle.Solution, error) {
	return puzzle.Solution{}, puzzle.ErrNoSolution
}

// [QUESTION]
func (p *Day2) Part2() (puzzle.Solution, error) {
	return puzzle.Solution{}, puzzle.ErrNoSolution
}
