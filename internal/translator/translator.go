// Package translator rewrites build definitions into the Skylark dialect.
//
// The rewrite is purely textual: an ordered list of regular-expression rules
// is applied to the whole file. Nothing is parsed and the output is not
// validated.
package translator

// Rule is a single textual substitution.
type Rule interface {
	Name() string
	Apply(src string) string
}

// Translator applies its rules in order.
type Translator struct {
	rules []Rule
}

// New creates a Translator with the default rule order:
// annotations, then raise statements, then "is None" comparisons.
func New() *Translator {
	return NewWithRules(
		AnnotationRule(),
		RaiseRule(),
		IsNoneRule(),
	)
}

// NewWithRules creates a Translator applying the given rules in order.
func NewWithRules(rules ...Rule) *Translator {
	return &Translator{rules: rules}
}

// Translate runs src through every rule.
func (t *Translator) Translate(src string) string {
	for _, r := range t.rules {
		src = r.Apply(src)
	}
	return src
}

// Rules returns the rule names in application order.
func (t *Translator) Rules() []string {
	names := make([]string, len(t.rules))
	for i, r := range t.rules {
		names[i] = r.Name()
	}
	return names
}
