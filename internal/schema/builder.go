package schema

import (
	"fmt"
	"os"

	language "github.com/camaragon/gql-codegen-tools/internal/language"
)

// Load reads and indexes the SDL document at path. A failure here makes the
// whole run meaningless, so callers treat it as fatal.
func Load(path string) (*Schema, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %q: %w", path, err)
	}
	return Parse(path, string(src))
}

// Parse indexes an SDL document held in memory.
func Parse(name, source string) (*Schema, error) {
	doc, err := language.ParseSchema(name, source)
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}
	return build(doc), nil
}

func build(doc *language.SchemaDocument) *Schema {
	s := &Schema{Types: make(map[string]*Type)}
	for _, t := range builtins {
		s.Types[t.Name] = t
	}
	for _, node := range doc.Definitions {
		mergeDefinition(s, node)
	}
	for _, node := range doc.Extensions {
		mergeDefinition(s, node)
	}
	return s
}

// mergeDefinition indexes a definition node, folding type extensions into
// their base definition. Duplicate fields and enum values keep the first
// declaration.
func mergeDefinition(s *Schema, node *language.Definition) {
	t := s.Types[node.Name]
	if t == nil {
		t = &Type{Name: node.Name, Kind: projectKind(node.Kind)}
		s.Types[node.Name] = t
	}
	for _, fieldNode := range node.Fields {
		if hasField(t, fieldNode.Name) {
			continue
		}
		t.Fields = append(t.Fields, &Field{
			Name: fieldNode.Name,
			Type: projectTypeRef(fieldNode.Type),
		})
	}
	for _, valueNode := range node.EnumValues {
		if hasEnumValue(t, valueNode.Name) {
			continue
		}
		t.EnumValues = append(t.EnumValues, valueNode.Name)
	}
}

func projectKind(kind language.DefinitionKind) TypeKind {
	switch kind {
	case language.Object:
		return TypeKindObject
	case language.Interface:
		return TypeKindInterface
	case language.Union:
		return TypeKindUnion
	case language.Enum:
		return TypeKindEnum
	case language.Scalar:
		return TypeKindScalar
	case language.InputObject:
		return TypeKindInputObject
	default:
		panic("unreachable")
	}
}

// projectTypeRef converts the parser's type node into the wrapped TypeRef
// form used by the classifier.
func projectTypeRef(node *language.Type) *TypeRef {
	if node == nil {
		return nil
	}
	if node.NonNull {
		return &TypeRef{
			Kind: TypeRefKindNonNull,
			OfType: projectTypeRef(&language.Type{
				NamedType: node.NamedType,
				Elem:      node.Elem,
				Position:  node.Position,
			}),
		}
	}
	if node.Elem != nil {
		return &TypeRef{Kind: TypeRefKindList, OfType: projectTypeRef(node.Elem)}
	}
	return &TypeRef{Kind: TypeRefKindNamed, Named: node.NamedType}
}

func hasField(t *Type, name string) bool {
	for _, f := range t.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func hasEnumValue(t *Type, name string) bool {
	for _, v := range t.EnumValues {
		if v == name {
			return true
		}
	}
	return false
}
