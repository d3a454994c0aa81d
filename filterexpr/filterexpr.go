// Package filterexpr provides the default atomic predicate implementation
// for filter expression trees: one property/operator/value comparison
// against a trace event's payload.
//
// A condition has the form
//
//	property op value
//
// where op is one of ==, !=, <, <=, >, >= or contains. The property name
// EventName is reserved and compares against the event's name rather than
// its payload. The value may be wrapped in double quotes, which allows it
// to contain spaces, parentheses and boolean operators:
//
//	Message contains "timeout && retry"
//
// When both sides of an ordering operator parse as numbers the comparison
// is numeric; otherwise it falls back to lexical ordering. A condition on a
// property the event does not carry never matches, whatever the operator.
package filterexpr

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bbqchickenrobot/perfview"
)

// Builder builds property comparison predicates. The zero value is ready
// to use.
type Builder struct{}

var _ perfview.Builder = Builder{}

// Valid reports whether text is a single property comparison.
func (Builder) Valid(text string) bool {
	_, err := parse(text)
	return err == nil
}

// Build compiles text into a comparison predicate.
func (Builder) Build(text string) (perfview.Predicate, error) {
	return parse(text)
}

type operator int

const (
	opEq operator = iota
	opNe
	opLt
	opLe
	opGt
	opGe
	opContains
)

func (o operator) String() string {
	switch o {
	case opEq:
		return "=="
	case opNe:
		return "!="
	case opLt:
		return "<"
	case opLe:
		return "<="
	case opGt:
		return ">"
	case opGe:
		return ">="
	case opContains:
		return "contains"
	}
	return "?"
}

// The property name that stands for the event's name instead of a payload
// entry.
const eventNameKey = "EventName"

// A Predicate is one compiled property comparison.
type Predicate struct {
	property string
	op       operator
	value    string
}

// Match reports whether the condition holds for the event.
func (p *Predicate) Match(e *perfview.Event) bool {
	return p.MatchProperties(e.Properties, e.Name)
}

// MatchProperties reports whether the condition holds for the payload and
// event name.
func (p *Predicate) MatchProperties(properties map[string]string, eventName string) bool {
	actual := eventName
	if p.property != eventNameKey {
		var ok bool
		actual, ok = properties[p.property]
		if !ok {
			return false
		}
	}
	return compare(actual, p.op, p.value)
}

func (p *Predicate) String() string {
	return p.property + " " + p.op.String() + " " + p.value
}

func compare(actual string, op operator, value string) bool {
	if op == opContains {
		return strings.Contains(actual, value)
	}

	if af, err := strconv.ParseFloat(actual, 64); err == nil {
		if vf, err := strconv.ParseFloat(value, 64); err == nil {
			switch op {
			case opEq:
				return af == vf
			case opNe:
				return af != vf
			case opLt:
				return af < vf
			case opLe:
				return af <= vf
			case opGt:
				return af > vf
			case opGe:
				return af >= vf
			}
		}
	}

	switch op {
	case opEq:
		return actual == value
	case opNe:
		return actual != value
	case opLt:
		return actual < value
	case opLe:
		return actual <= value
	case opGt:
		return actual > value
	case opGe:
		return actual >= value
	}
	return false
}

// Characters that may not appear in an unquoted property name or value.
// Anything here would collide with the expression syntax around the
// condition.
const structural = "&|!()\" \t"

func parse(text string) (*Predicate, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.New("empty condition")
	}

	lhs, rhs, op, err := splitOperator(s)
	if err != nil {
		return nil, err
	}

	property := strings.TrimSpace(lhs)
	if property == "" {
		return nil, errors.Errorf("missing property name in %q", text)
	}
	if strings.ContainsAny(property, structural) {
		return nil, errors.Errorf("invalid property name %q in %q", property, text)
	}

	value := strings.TrimSpace(rhs)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	} else {
		if value == "" {
			return nil, errors.Errorf("missing value in %q", text)
		}
		if strings.ContainsAny(value, structural) {
			return nil, errors.Errorf("invalid unquoted value %q in %q (quote it)", value, text)
		}
	}

	return &Predicate{property: property, op: op, value: value}, nil
}

// splitOperator finds the first comparison operator outside quotes and
// splits the condition around it.
func splitOperator(s string) (lhs, rhs string, op operator, err error) {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		switch {
		case strings.HasPrefix(s[i:], "=="):
			return s[:i], s[i+2:], opEq, nil
		case strings.HasPrefix(s[i:], "!="):
			return s[:i], s[i+2:], opNe, nil
		case strings.HasPrefix(s[i:], "<="):
			return s[:i], s[i+2:], opLe, nil
		case strings.HasPrefix(s[i:], ">="):
			return s[:i], s[i+2:], opGe, nil
		case c == '<':
			return s[:i], s[i+1:], opLt, nil
		case c == '>':
			return s[:i], s[i+1:], opGt, nil
		case wordAt(s, i, "contains"):
			return s[:i], s[i+len("contains"):], opContains, nil
		}
	}
	return "", "", 0, errors.Errorf("no comparison operator in %q", s)
}

// wordAt reports whether the word occurs at offset i surrounded by spaces.
func wordAt(s string, i int, word string) bool {
	if !strings.HasPrefix(s[i:], word) {
		return false
	}
	if i == 0 || s[i-1] != ' ' {
		return false
	}
	end := i + len(word)
	return end < len(s) && s[end] == ' '
}
