/*
** internal/puzzles/day_1.go
** https://adventofcode.com/2021/day/1
*/

package puzzles

import (
	"github.com/example/aoc/internal/puzzle"
)

// day1Input locates the day 1 fixture, relative to the project root.
const day1Input = "input/1.txt"

// Day1 solves the day 1 puzzle.
type Day1 struct{}

// NewDay1 constructs the day 1 puzzle.
func NewDay1() *Day1 {
	return &Day1{}
}

// [QUESTION]
func (p *Day1) Part1() (puzzle.Solution, error) {
	return puzzle.Solution{}, puzzle.ErrNoSolution
}

// [QUESTION]
func (p *Day1) Part2() (puzzle.Solution, error) {
	return puzzle.Solution{}, puzzle.ErrNoSolution
}
