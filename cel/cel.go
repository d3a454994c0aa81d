// Package cel provides a predicate builder backed by Google's cel-go
// expression engine. See https://github.com/google/cel-go and
// https://opensource.google/projects/cel for more information about CEL.
//
// Atomic predicates are registered by name as CEL expressions over two
// variables: name (the event's name, a string) and properties (the event's
// payload, a map of string to string). Filter expressions then combine the
// registered names:
//
//	b, _ := cel.NewBuilder()
//	b.Register("isError", `properties["Level"] == "Error"`)
//	b.Register("fromNet", `properties["Source"] == "Net"`)
//	tree, _ := perfview.NewExpressionTree(b, "isError && !fromNet")
//
// Register every predicate before compiling trees with the builder; a
// Builder must not be mutated while it is in use.
package cel

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
	exprbp "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/bbqchickenrobot/perfview"
)

// Builder holds named CEL predicates, parsed, checked and compiled to
// runnable programs at registration time.
type Builder struct {
	env      *cel.Env
	programs map[string]cel.Program
	sources  map[string]string
}

var _ perfview.Builder = (*Builder)(nil)

// NewBuilder initializes a builder with the event declarations (name and
// properties) in scope.
func NewBuilder() (*Builder, error) {
	env, err := cel.NewEnv(cel.Declarations(
		decls.NewIdent("name", decls.String, nil),
		decls.NewIdent("properties", decls.NewMapType(decls.String, decls.String), nil),
	))
	if err != nil {
		return nil, err
	}
	return &Builder{
		env:      env,
		programs: map[string]cel.Program{},
		sources:  map[string]string{},
	}, nil
}

// Register parses, checks and stores the CEL expression under the name.
// The name is what filter expressions refer to; it must be a plain
// identifier so the expression compiler can recognize it. The expression
// must produce a boolean.
func (b *Builder) Register(name string, expr string) error {
	if !validName(name) {
		return fmt.Errorf("predicate name %q is not a plain identifier", name)
	}

	p, iss := b.env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return fmt.Errorf("parsing predicate %s: %w", name, iss.Err())
	}

	c, iss := b.env.Check(p)
	if iss != nil && iss.Err() != nil {
		return fmt.Errorf("checking predicate %s: %w", name, iss.Err())
	}

	if !isBool(c.ResultType()) {
		return fmt.Errorf("predicate %s must produce a boolean, got %s", name, c.ResultType())
	}

	prg, err := b.env.Program(c)
	if err != nil {
		return fmt.Errorf("generating program for predicate %s: %w", name, err)
	}

	b.programs[name] = prg
	b.sources[name] = expr
	return nil
}

// Source returns the CEL expression registered under the name.
func (b *Builder) Source(name string) (string, bool) {
	src, ok := b.sources[name]
	return src, ok
}

// Valid reports whether text is the name of a registered predicate.
func (b *Builder) Valid(text string) bool {
	_, ok := b.programs[strings.TrimSpace(text)]
	return ok
}

// Build returns the predicate registered under the name.
func (b *Builder) Build(text string) (perfview.Predicate, error) {
	name := strings.TrimSpace(text)
	prg, ok := b.programs[name]
	if !ok {
		return nil, fmt.Errorf("no predicate registered with name %q", name)
	}
	return &predicate{name: name, prg: prg}, nil
}

type predicate struct {
	name string
	prg  cel.Program
}

// Match reports whether the registered CEL program evaluates to true for
// the event.
func (p *predicate) Match(e *perfview.Event) bool {
	return p.MatchProperties(e.Properties, e.Name)
}

func (p *predicate) MatchProperties(properties map[string]string, eventName string) bool {
	if properties == nil {
		properties = map[string]string{}
	}
	out, _, err := p.prg.Eval(map[string]interface{}{
		"name":       eventName,
		"properties": properties,
	})
	if err != nil {
		// Indexing a property the event does not carry is a CEL runtime
		// error; the condition cannot hold for this event.
		return false
	}
	v, ok := out.Value().(bool)
	return ok && v
}

func isBool(t *exprbp.Type) bool {
	return t != nil && t.String() == decls.Bool.String()
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
