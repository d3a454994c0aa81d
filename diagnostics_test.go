package perfview_test

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/bbqchickenrobot/perfview"
)

func TestExplain(t *testing.T) {
	is := is.New(t)

	tree, err := perfview.NewExpressionTree(&mockBuilder{}, "A && !B")
	is.NoErr(err)

	e := event(map[string]bool{"A": true, "B": false})
	d, err := tree.Explain(e)
	is.NoErr(err)

	is.Equal(d.Expression, "A && !B")
	is.True(d.Result)
	is.Equal(len(d.Predicates), 2)
	is.Equal(d.Predicates[0].Text, "A")
	is.True(d.Predicates[0].Value)
	is.Equal(d.Predicates[1].Text, "B")
	is.True(!d.Predicates[1].Value)
}

func TestExplainFastPath(t *testing.T) {
	is := is.New(t)

	tree, err := perfview.NewExpressionTree(&mockBuilder{}, "A")
	is.NoErr(err)

	d, err := tree.Explain(event(map[string]bool{"A": false}))
	is.NoErr(err)
	is.True(!d.Result)
	is.Equal(len(d.Predicates), 1)
}

func TestDiagnosticsAsString(t *testing.T) {
	is := is.New(t)

	tree, err := perfview.NewExpressionTree(&mockBuilder{}, "A && !B")
	is.NoErr(err)

	e := event(map[string]bool{"A": true, "B": false})
	d, err := tree.Explain(e)
	is.NoErr(err)

	s := d.AsString(e)
	is.True(strings.Contains(s, "A && !B"))
	is.True(strings.Contains(s, "Result: true"))
	is.True(strings.Contains(s, "EventName"))
}
