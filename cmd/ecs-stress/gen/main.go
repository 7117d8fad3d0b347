// Command gen writes the generated components and systems used by ecs-stress.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

type component struct {
	Index int
	Name  string
	// Hashed components use a HashIndex storage.
	Hashed bool
}

type system struct {
	Name     string
	Read     string
	Write    string
	Optional string
}

type model struct {
	Components []component
	Systems    []system
}

func main() {
	components := flag.Int("components", 32, "Number of component types to generate.")
	systems := flag.Int("systems", 12, "Number of systems to generate.")
	out := flag.String("out", "generated.go", "Output file.")
	flag.Parse()

	src, err := generate(*components, *systems, *out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}
}

// generate renders the source and runs it through goimports.
func generate(components, systems int, filename string) ([]byte, error) {
	if components < 3 {
		return nil, fmt.Errorf("need at least 3 components, got %d", components)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, buildModel(components, systems)); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return src, nil
}

// buildModel picks the components of each system deterministically so
// regenerating with the same counts gives the same file.
func buildModel(components, systems int) model {
	var m model
	for i := range components {
		m.Components = append(m.Components, component{
			Index:  i,
			Name:   componentName(i),
			Hashed: i%4 == 3,
		})
	}

	for i := range systems {
		read := i % components
		write := next((i*7+3)%components, components, read)
		optional := next((i*11+5)%components, components, read, write)
		m.Systems = append(m.Systems, system{
			Name:     fmt.Sprintf("system%03d", i),
			Read:     componentName(read),
			Write:    componentName(write),
			Optional: componentName(optional),
		})
	}
	return m
}

// next returns the first index at or after i that is not taken.
func next(i, n int, taken ...int) int {
	for {
		free := true
		for _, t := range taken {
			if i == t {
				free = false
				break
			}
		}
		if free {
			return i
		}
		i = (i + 1) % n
	}
}

func componentName(i int) string {
	return fmt.Sprintf("Component%03d", i)
}

var fileTemplate = template.Must(template.New("generated").Parse(`// Code generated by ecs-stress/gen; DO NOT EDIT.

package main

import (
	"math/rand/v2"

	"github.com/plus3/sparsecs/ecs"
)

const (
	componentCount = {{len .Components}}
	systemCount = {{len .Systems}}
)
{{range .Components}}
type {{.Name}} struct {
	Value float64
	Ticks int64
}
{{end}}
// RegisterAllGeneratedComponents registers every generated component type.
func RegisterAllGeneratedComponents(w *ecs.World) {
{{- range .Components}}
{{- if .Hashed}}
	ecs.RegisterComponent[{{.Name}}](w, ecs.WithStorageKind(ecs.HashIndex))
{{- else}}
	ecs.RegisterComponent[{{.Name}}](w)
{{- end}}
{{- end}}
}

var componentSpawners = [componentCount]func(r *rand.Rand) ecs.ComponentValue{
{{- range .Components}}
	func(r *rand.Rand) ecs.ComponentValue { return ecs.With({{.Name}}{Value: r.Float64()}) },
{{- end}}
}
{{range .Systems}}
type {{.Name}}Shape struct {
	A *{{.Read}}
	B *{{.Write}} ` + "`ecs:\"mut\"`" + `
	C *{{.Optional}} ` + "`ecs:\"optional\"`" + `
}

func {{.Name}}(s {{.Name}}Shape) {
	s.B.Value += s.A.Value * 0.5
	if s.C != nil {
		s.B.Value -= s.C.Value
	}
	s.B.Ticks++
}
{{end}}
// RegisterAllGeneratedSystems adds every generated system to b in order.
func RegisterAllGeneratedSystems(b *ecs.ScheduleBuilder) {
{{- range .Systems}}
	b.System(ecs.ForEach({{.Name}}).Named("{{.Name}}"))
{{- end}}
}
`))
