package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/aoc/internal/puzzle"
)

func TestRegistryMatchesDays(t *testing.T) {
	all := All()
	require.Len(t, all, len(Days))
	for i, d := range Days {
		assert.Equal(t, i+1, d, "days must be contiguous and one-based")
	}
}

func TestStubsReturnNoSolution(t *testing.T) {
	for i, p := range All() {
		_, err := p.Part1()
		assert.ErrorIs(t, err, puzzle.ErrNoSolution, "day %d part 1", Days[i])
		_, err = p.Part2()
		assert.ErrorIs(t, err, puzzle.ErrNoSolution, "day %d part 2", Days[i])
	}
}
