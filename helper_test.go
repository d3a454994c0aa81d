package perfview_test

import (
	"fmt"
	"strings"

	"github.com/bbqchickenrobot/perfview"
)

// -------------------------------------------------- MOCK BUILDER
// mockBuilder is used for testing. A valid predicate is a single run of
// letters and digits; the resulting predicate is true when the event has a
// property of that name set to "true", or when the event name equals it.
// The builder counts how many predicates it built, so tests can verify
// that compilation happens once.
type mockBuilder struct {
	built []string
}

func (b *mockBuilder) Valid(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func (b *mockBuilder) Build(text string) (perfview.Predicate, error) {
	if !b.Valid(text) {
		return nil, fmt.Errorf("not a single condition: %q", text)
	}
	b.built = append(b.built, text)
	return mockPredicate(text), nil
}

type mockPredicate string

func (m mockPredicate) Match(e *perfview.Event) bool {
	return m.MatchProperties(e.Properties, e.Name)
}

func (m mockPredicate) MatchProperties(properties map[string]string, eventName string) bool {
	if string(m) == eventName {
		return true
	}
	return properties[string(m)] == "true"
}

// quirkBuilder accepts anything that carries no && or ||, including text
// with stray parentheses. Used to probe the fast-path guard.
type quirkBuilder struct{}

func (quirkBuilder) Valid(text string) bool {
	return text != "" && !strings.Contains(text, "&&") && !strings.Contains(text, "||") && !strings.HasPrefix(text, "!")
}

func (quirkBuilder) Build(text string) (perfview.Predicate, error) {
	if !(quirkBuilder{}).Valid(text) {
		return nil, fmt.Errorf("not a single condition: %q", text)
	}
	return mockPredicate(text), nil
}

// event builds an event whose properties assign "true"/"false" to the
// given names.
func event(truth map[string]bool) *perfview.Event {
	props := make(map[string]string, len(truth))
	for k, v := range truth {
		props[k] = fmt.Sprintf("%t", v)
	}
	return &perfview.Event{Name: "test", Properties: props}
}
