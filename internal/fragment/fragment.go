// Package fragment parses a fragment document into the typed form consumed
// by the resolver: type condition, ordered selections, field-to-fragment
// associations, and top-level spreads.
package fragment

import (
	language "github.com/camaragon/gql-codegen-tools/internal/language"
)

// Document is one parsed fragment definition.
type Document struct {
	Name          string
	TypeCondition string
	Selections    []Selection
	// Spreads lists top-level fragment spreads in declaration order. They
	// compose whole fragments into this one rather than selecting a field.
	Spreads []string
	// InlineFragments counts `... on X` selections found anywhere in the
	// body. They are outside the selection model and are skipped.
	InlineFragments int
}

// Selection is a single selected field.
type Selection struct {
	Field string
	// Fragments holds the spread names found directly inside the field's
	// sub-selection, in order. The first one is the field's fragment
	// association; extras make the association ambiguous.
	Fragments []string
	// Inline carries the field's direct sub-selection when it contains no
	// spread at all. The resolver derives an anonymous fragment from it.
	Inline []Selection
}

// Association returns the spread associated with the field, if any.
func (s Selection) Association() (string, bool) {
	if len(s.Fragments) == 0 {
		return "", false
	}
	return s.Fragments[0], true
}

// Ambiguous reports whether more than one spread competes for the
// association. The first spread wins; callers should surface the rest.
func (s Selection) Ambiguous() bool { return len(s.Fragments) > 1 }

// Parse extracts the first fragment definition from documentText. The name
// identifies the source in errors.
func Parse(name, documentText string) (*Document, error) {
	parsed, err := language.ParseQuery(name, documentText)
	if err != nil {
		return nil, &ParseError{File: name, Err: err}
	}
	if len(parsed.Fragments) == 0 {
		return nil, &ParseError{File: name}
	}

	def := parsed.Fragments[0]
	doc := &Document{
		Name:          def.Name,
		TypeCondition: def.TypeCondition,
	}
	doc.Selections, doc.Spreads = convert(def.SelectionSet, &doc.InlineFragments)
	return doc, nil
}

// convert maps a selection set onto the Document model. Spreads at this
// level are returned separately: at the top of a fragment they are
// composition, inside a field's sub-selection they are the association.
func convert(set language.SelectionSet, inlineCount *int) ([]Selection, []string) {
	var selections []Selection
	var spreads []string
	for _, node := range set {
		switch sel := node.(type) {
		case *language.Field:
			selections = append(selections, convertField(sel, inlineCount))
		case *language.FragmentSpread:
			spreads = append(spreads, sel.Name)
		case *language.InlineFragment:
			*inlineCount++
		}
	}
	return selections, spreads
}

func convertField(node *language.Field, inlineCount *int) Selection {
	sel := Selection{Field: node.Name}
	if len(node.SelectionSet) == 0 {
		return sel
	}
	nested, spreads := convert(node.SelectionSet, inlineCount)
	if len(spreads) > 0 {
		sel.Fragments = spreads
		return sel
	}
	sel.Inline = nested
	return sel
}
