package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr string
	}{
		{"single digit", []string{"3"}, 3, ""},
		{"multi digit", []string{"25"}, 25, ""},
		{"zero accepted", []string{"0"}, 0, ""},
		{"negative accepted", []string{"-2"}, -2, ""},
		{"extra args ignored", []string{"4", "junk"}, 4, ""},
		{"missing", nil, 0, "missing argument DAY"},
		{"non-numeric", []string{"day5"}, 0, "invalid argument DAY: day5"},
		{"float", []string{"3.5"}, 0, "invalid argument DAY: 3.5"},
		{"empty string", []string{""}, 0, "invalid argument DAY: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.args)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDayMissingSentinel(t *testing.T) {
	_, err := ParseDay(nil)
	require.ErrorIs(t, err, ErrMissingDay)
}
