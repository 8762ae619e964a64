package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolutionString(t *testing.T) {
	tests := []struct {
		name string
		sol  Solution
		want string
	}{
		{"int", FromInt(42), "42"},
		{"negative int64", FromInt64(-7), "-7"},
		{"uint64", FromUint64(18446744073709551615), "18446744073709551615"},
		{"string", FromString("cabbage"), "cabbage"},
		{"zero value", Solution{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sol.String())
		})
	}
}

func TestErrNoSolutionMessage(t *testing.T) {
	assert.EqualError(t, ErrNoSolution, "no solution found")
}

func TestInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.txt")
	require.NoError(t, os.WriteFile(path, []byte("199\n200\n"), 0644))

	got, err := Input(path)
	require.NoError(t, err)
	assert.Equal(t, "199\n200\n", got)
}

func TestInputMissingFile(t *testing.T) {
	_, err := Input(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
