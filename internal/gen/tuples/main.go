// Command tuples generates the fixed-arity tuple and function types.
//
// Usage:
//
//	go run ./internal/gen/tuples -kind tuple -o seq/tuple/tuples_gen.go
//	go run ./internal/gen/tuples -kind function -o seq/function/functions_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/MakeNowJust/heredoc/v2"
)

const (
	minDegree = 2
	maxDegree = 16
)

var header = heredoc.Doc(`
	// Code generated by internal/gen/tuples; DO NOT EDIT.

`)

var tupleTemplate = heredoc.Doc(`
	package tuple

	import "cmp"
	{{range .}}
	// Tuple{{.N}} is a tuple of degree {{.N}}.
	type Tuple{{.N}}[{{.TypeParams}} any] struct {
	{{- range .Indexes}}
		V{{.}} T{{.}}
	{{- end}}
	}

	// New{{.N}} creates a Tuple{{.N}}.
	func New{{.N}}[{{.TypeParams}} any]({{.Params}}) Tuple{{.N}}[{{.TypeParams}}] {
		return Tuple{{.N}}[{{.TypeParams}}]{ {{- .Fields -}} }
	}

	// Degree returns {{.N}}.
	func (Tuple{{.N}}[{{.TypeParams}}]) Degree() int {
		return {{.N}}
	}

	// Array returns the elements in order.
	func (t Tuple{{.N}}[{{.TypeParams}}]) Array() []any {
		return []any{ {{- .Values -}} }
	}

	// Unpack returns the elements as separate values.
	func (t Tuple{{.N}}[{{.TypeParams}}]) Unpack() ({{.TypeParams}}) {
		return {{.Values}}
	}

	func (t Tuple{{.N}}[{{.TypeParams}}]) String() string {
		return format(t.Array())
	}

	// Compare{{.N}} orders two tuples element by element.
	func Compare{{.N}}[{{.TypeParams}} cmp.Ordered](a, b Tuple{{.N}}[{{.TypeParams}}]) int {
	{{- range .Init}}
		if c := cmp.Compare(a.V{{.}}, b.V{{.}}); c != 0 {
			return c
		}
	{{- end}}
		return cmp.Compare(a.V{{.N}}, b.V{{.N}})
	}
	{{end}}
`)

var functionTemplate = heredoc.Doc(`
	package function

	import "github.com/lguimbarda/min-seq/seq/tuple"
	{{range .}}
	// Function{{.N}} is a function of {{.N}} arguments.
	type Function{{.N}}[{{.TypeParams}}, R any] func({{.TypeParams}}) R

	// ApplyTuple calls f with the elements of args.
	func (f Function{{.N}}[{{.TypeParams}}, R]) ApplyTuple(args tuple.Tuple{{.N}}[{{.TypeParams}}]) R {
		return f({{.ArgValues}})
	}

	// Consumer{{.N}} is a function of {{.N}} arguments without a result.
	type Consumer{{.N}}[{{.TypeParams}} any] func({{.TypeParams}})

	// AcceptTuple calls c with the elements of args.
	func (c Consumer{{.N}}[{{.TypeParams}}]) AcceptTuple(args tuple.Tuple{{.N}}[{{.TypeParams}}]) {
		c({{.ArgValues}})
	}
	{{end}}
`)

// degree holds the pre-rendered fragments for one arity.
type degree struct {
	N          int
	Indexes    []int
	Init       []int
	TypeParams string
	Params     string
	Fields     string
	Values     string
	ArgValues  string
}

func newDegree(n int) degree {
	d := degree{N: n}
	var types, params, fields, values, args []string
	for i := 1; i <= n; i++ {
		d.Indexes = append(d.Indexes, i)
		if i < n {
			d.Init = append(d.Init, i)
		}
		types = append(types, fmt.Sprintf("T%d", i))
		params = append(params, fmt.Sprintf("v%d T%d", i, i))
		fields = append(fields, fmt.Sprintf("V%d: v%d", i, i))
		values = append(values, fmt.Sprintf("t.V%d", i))
		args = append(args, fmt.Sprintf("args.V%d", i))
	}
	d.TypeParams = strings.Join(types, ", ")
	d.Params = strings.Join(params, ", ")
	d.Fields = strings.Join(fields, ", ")
	d.Values = strings.Join(values, ", ")
	d.ArgValues = strings.Join(args, ", ")
	return d
}

func main() {
	kind := flag.String("kind", "tuple", "what to generate: tuple or function")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	var src string
	switch *kind {
	case "tuple":
		src = tupleTemplate
	case "function":
		src = functionTemplate
	default:
		log.Fatalf("unknown kind %q", *kind)
	}

	code, err := render(src)
	if err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		os.Stdout.Write(code)
		return
	}
	if err := os.WriteFile(*out, code, 0o644); err != nil {
		log.Fatal(err)
	}
}

func render(src string) ([]byte, error) {
	tmpl, err := template.New("gen").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var degrees []degree
	for n := minDegree; n <= maxDegree; n++ {
		degrees = append(degrees, newDegree(n))
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if err := tmpl.Execute(&buf, degrees); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return code, nil
}
