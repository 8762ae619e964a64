package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	puzzletmpl "github.com/example/aoc/internal/templates/puzzle"
)

// Generator generates puzzle scaffolding from templates.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateDay produces the three artifacts for one day: the solution
// stub, the regenerated registry covering days 1..D, and the input
// fixture. The registry is a pure function of D — it always lists the
// full range regardless of which day files exist on disk.
func (g *Generator) GenerateDay(spec *DaySpec) (*GeneratorResult, error) {
	result := &GeneratorResult{}

	stub, err := g.render("day", puzzletmpl.GetDayTemplate, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to render day stub: %w", err)
	}
	result.Files = append(result.Files, GeneratedFile{
		Path:      spec.StubPath,
		Content:   stub,
		Operation: OpCreate,
	})

	registry, err := g.render("registry", puzzletmpl.GetRegistryTemplate, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to render registry: %w", err)
	}
	result.Files = append(result.Files, GeneratedFile{
		Path:      spec.RegistryPath,
		Content:   registry,
		Operation: OpCreate,
	})

	result.Files = append(result.Files, GeneratedFile{
		Path:      spec.InputPath,
		Operation: OpTouch,
	})

	return result, nil
}

// render renders one embedded template against the day spec.
func (g *Generator) render(name string, source func() (string, error), spec *DaySpec) (string, error) {
	content, err := source()
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", err
	}

	return buf.String(), nil
}
