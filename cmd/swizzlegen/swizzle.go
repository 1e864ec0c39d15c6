package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

var letters = []string{"x", "y", "z", "w"}

type swizzle struct {
	Name   string
	Result string
	Fields []string
	Doc    string
}

func vectorType(width int) string {
	return fmt.Sprintf("Vec%d", width)
}

// sequences returns every ordered selection of length indices in [0, width),
// repetition allowed, in lexicographic order.
func sequences(width, length int) [][]int {
	if length == 0 {
		return [][]int{nil}
	}

	var result [][]int
	for first := 0; first < width; first++ {
		for _, rest := range sequences(width, length-1) {
			seq := append([]int{first}, rest...)
			result = append(result, seq)
		}
	}

	return result
}

func swizzlesOf(width int) []swizzle {
	var result []swizzle

	for length := 2; length <= 4; length++ {
		for _, seq := range sequences(width, length) {
			var name strings.Builder
			var fields, doc []string

			for _, idx := range seq {
				name.WriteString(strings.ToUpper(letters[idx]))
				fields = append(fields, "lhs."+strings.ToUpper(letters[idx]))
				doc = append(doc, letters[idx])
			}

			result = append(result, swizzle{
				Name:   name.String(),
				Result: vectorType(length),
				Fields: fields,
				Doc:    "(" + strings.Join(doc, ", ") + ")",
			})
		}
	}

	return result
}

var fileTemplate = template.Must(template.New("swizzle").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`// Code generated by swizzlegen. DO NOT EDIT.

package {{ .Package }}
{{ range .Swizzles }}
// {{ .Name }} returns the vector {{ .Doc }}.
func (lhs {{ $.Type }}) {{ .Name }}() {{ .Result }} {
	return {{ .Result }}{ {{- join .Fields ", " -}} }
}
{{ end }}`))

func render(pkg string, width int) ([]byte, error) {
	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, map[string]any{
		"Package":  pkg,
		"Type":     vectorType(width),
		"Swizzles": swizzlesOf(width),
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	return imports.Process(fileName(width), buf.Bytes(), nil)
}
