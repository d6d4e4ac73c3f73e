// Package schema loads a GraphQL SDL document into an immutable index of
// named types and answers type/field lookups for the mock pipeline. It does
// no validation beyond those lookups.
package schema

// Schema indexes every named type of one SDL document.
type Schema struct {
	Types map[string]*Type
}

// Type is a named GraphQL type.
type Type struct {
	Name       string
	Kind       TypeKind
	Fields     []*Field // OBJECT and INTERFACE, declaration order
	EnumValues []string // ENUM, declaration order
}

// Field is a field on an object or interface type.
type Field struct {
	Name string
	Type *TypeRef
}

// TypeKind represents the kind of a named type.
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// TypeRef is a possibly wrapped reference to a named type.
type TypeRef struct {
	Kind   TypeRefKind
	OfType *TypeRef // LIST and NON_NULL
	Named  string   // NAMED
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

// Type returns the named type, or nil when the schema does not define it.
func (s *Schema) Type(name string) *Type {
	return s.Types[name]
}

// FieldType returns the declared type of typeName.fieldName.
func (s *Schema) FieldType(typeName, fieldName string) (*TypeRef, error) {
	t := s.Types[typeName]
	if t == nil {
		return nil, &SchemaError{Type: typeName}
	}
	for _, f := range t.Fields {
		if f.Name == fieldName {
			return f.Type, nil
		}
	}
	return nil, &SchemaError{Type: typeName, Field: fieldName}
}

// FirstEnumValue returns the first declared member of the enum.
func (s *Schema) FirstEnumValue(name string) (string, error) {
	t := s.Types[name]
	if t == nil || t.Kind != TypeKindEnum {
		return "", &SchemaError{Type: name}
	}
	if len(t.EnumValues) == 0 {
		return "", &SchemaError{Type: name, Field: "<enum values>"}
	}
	return t.EnumValues[0], nil
}

// IsNonNull reports whether the outermost wrapper is non-null.
func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

// IsList reports whether the reference is list-shaped after stripping at
// most one outer non-null wrapper. Deeper wrapping does not count.
func (t *TypeRef) IsList() bool {
	if t == nil {
		return false
	}
	if t.Kind == TypeRefKindList {
		return true
	}
	if t.Kind == TypeRefKindNonNull && t.OfType != nil {
		return t.OfType.Kind == TypeRefKindList
	}
	return false
}

// NamedType unwraps every list and non-null wrapper and returns the base
// type name.
func (t *TypeRef) NamedType() string {
	current := t
	for current != nil {
		if current.Named != "" {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

// String renders the reference in SDL syntax, for diagnostics.
func (t *TypeRef) String() string {
	if t == nil {
		return "Unknown"
	}
	switch t.Kind {
	case TypeRefKindNamed:
		return t.Named
	case TypeRefKindList:
		return "[" + t.OfType.String() + "]"
	case TypeRefKindNonNull:
		return t.OfType.String() + "!"
	default:
		return "Unknown"
	}
}
