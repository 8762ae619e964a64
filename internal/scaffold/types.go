// Package scaffold generates solution stubs and the day registry.
package scaffold

import (
	"fmt"
	"path"
)

// Operations understood by the file writer.
const (
	OpCreate = "create" // write content, overwriting any existing file
	OpTouch  = "touch"  // create empty if absent, never modify existing content
)

// DaySpec contains all information needed to scaffold one day.
type DaySpec struct {
	Day  int   // day identifier as given on the command line; range is not checked
	Year int   // event year, used in the puzzle URL
	Days []int // registry range 1..Day ascending; empty when Day < 1

	StubPath     string // slash-separated, relative to the project root
	RegistryPath string
	InputPath    string
}

// NewDaySpec builds the spec for one day using the configured directories.
func NewDaySpec(day, year int, puzzleDir, inputDir string) *DaySpec {
	var days []int
	for i := 1; i <= day; i++ {
		days = append(days, i)
	}

	return &DaySpec{
		Day:          day,
		Year:         year,
		Days:         days,
		StubPath:     path.Join(puzzleDir, fmt.Sprintf("day_%d.go", day)),
		RegistryPath: path.Join(puzzleDir, "puzzles.go"),
		InputPath:    path.Join(inputDir, fmt.Sprintf("%d.txt", day)),
	}
}

// GeneratedFile represents one artifact to be written.
type GeneratedFile struct {
	Path      string // relative to the project root
	Content   string // empty for OpTouch
	Operation string // OpCreate or OpTouch
}

// GeneratorResult contains the artifacts of one scaffold operation.
type GeneratorResult struct {
	Files []GeneratedFile
}
