package perfview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Delta456/box-cli-maker/v2"
	"github.com/alexeyco/simpletable"
)

// Diagnostics captures the state of one evaluation: how each atomic
// predicate voted for the event, and the final result.
type Diagnostics struct {
	Expression string
	Result     bool
	Predicates []PredicateState
}

// PredicateState is the outcome of one atomic predicate during an evaluation.
type PredicateState struct {
	Slot  int
	Text  string
	Value bool
}

// Explain evaluates the tree against the event and reports the truth value
// every predicate produced. It is meant for debugging filters, not for the
// per-event hot path.
func (t *ExpressionTree) Explain(e *Event) (*Diagnostics, error) {
	d := &Diagnostics{Expression: t.expr}

	switch m := t.m.(type) {
	case simpleMatcher:
		d.Result = m.pred.Match(e)
		d.Predicates = []PredicateState{{Slot: 0, Text: t.expr, Value: d.Result}}
	case compiledMatcher:
		truth := make([]bool, len(m.arena))
		for i := range m.arena {
			truth[i] = m.arena[i].pred.Match(e)
			d.Predicates = append(d.Predicates, PredicateState{
				Slot:  i,
				Text:  m.arena[i].text,
				Value: truth[i],
			})
		}
		result, err := evalPostfix(m.expr, m.postfix, truth)
		if err != nil {
			return nil, err
		}
		d.Result = result
	}
	return d, nil
}

// AsString renders the diagnostics as a boxed report. If an event is
// provided, its name and payload are included.
func (d *Diagnostics) AsString(e *Event) string {
	Box := box.New(box.Config{Px: 2, Py: 1, Type: "Double", Color: "Cyan", TitlePos: "Top", ContentAlign: "Left"})

	s := strings.Builder{}
	s.WriteString("Expression:\n")
	s.WriteString("-----------\n")
	s.WriteString(d.Expression)
	s.WriteString("\n\n")
	s.WriteString("Predicate State:\n")
	s.WriteString("----------------\n")
	s.WriteString(d.predicateTable().String())
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Result: %t\n", d.Result))

	if e != nil {
		s.WriteString("\nEvent:\n")
		s.WriteString("------\n")
		s.WriteString(eventTable(e).String())
	}
	return Box.String("FILTER EVALUATION DIAGNOSTIC REPORT", s.String())
}

func (d *Diagnostics) predicateTable() *simpletable.Table {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Slot"},
			{Align: simpletable.AlignCenter, Text: "Predicate"},
			{Align: simpletable.AlignCenter, Text: "Value"},
		},
	}

	for _, p := range d.Predicates {
		r := []*simpletable.Cell{
			{Align: simpletable.AlignRight, Text: fmt.Sprintf("p%d", p.Slot)},
			{Text: p.Text},
			{Text: fmt.Sprintf("%t", p.Value)},
		}
		table.Body.Cells = append(table.Body.Cells, r)
	}

	table.SetStyle(simpletable.StyleUnicode)
	return table
}

func eventTable(e *Event) *simpletable.Table {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Property"},
			{Align: simpletable.AlignCenter, Text: "Value"},
		},
	}

	rows := [][]string{{"EventName", e.Name}}
	keys := make([]string, 0, len(e.Properties))
	for k := range e.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, []string{k, e.Properties[k]})
	}

	for _, row := range rows {
		r := []*simpletable.Cell{
			{Text: row[0]},
			{Text: row[1]},
		}
		table.Body.Cells = append(table.Body.Cells, r)
	}

	table.SetStyle(simpletable.StyleUnicode)
	return table
}
