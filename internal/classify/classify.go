// Package classify maps a field's declared type and name onto the mock
// generation strategy for that field.
package classify

import (
	schema "github.com/camaragon/gql-codegen-tools/internal/schema"
)

// Class is the generation strategy for one field.
type Class int

const (
	// ClassID fields draw their value from the identifier registry.
	ClassID Class = iota
	// ClassScalar fields get a synthesized literal.
	ClassScalar
	// ClassEnum fields reference the enum's first declared member.
	ClassEnum
	// ClassObject fields reference a nested generated factory.
	ClassObject
)

func (c Class) String() string {
	switch c {
	case ClassID:
		return "id"
	case ClassScalar:
		return "scalar"
	case ClassEnum:
		return "enum"
	case ClassObject:
		return "object"
	default:
		return "unknown"
	}
}

// Classify decides the strategy for a field and whether its expression must
// be wrapped in a single-element list. First match wins: the field named
// "id" is always an identifier, whatever scalar backs it; then scalars
// (built-in or declared), then enums; everything else is treated as a
// nested object. Pure: same inputs, same answer.
func Classify(s *schema.Schema, ref *schema.TypeRef, fieldName string) (Class, bool) {
	list := ref.IsList()
	if fieldName == "id" {
		return ClassID, list
	}
	base := s.Type(ref.NamedType())
	if base != nil {
		switch base.Kind {
		case schema.TypeKindScalar:
			return ClassScalar, list
		case schema.TypeKindEnum:
			return ClassEnum, list
		}
	}
	return ClassObject, list
}
