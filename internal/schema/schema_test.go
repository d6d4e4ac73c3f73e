package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const testSDL = `
scalar DateTime

enum Role {
  ADMIN
  MEMBER
}

type User {
  id: ID!
  email: String!
  role: Role!
  tags: [String!]
  friend: User
  joined: DateTime
}

extend type User {
  nickname: String
}

union Pet = Dog | Cat

type Dog { id: ID! }
type Cat { id: ID! }
`

func mustParse(t *testing.T) *Schema {
	t.Helper()
	s, err := Parse("test.graphql", testSDL)
	require.NoError(t, err)
	return s
}

func TestParseIndexesTypes(t *testing.T) {
	s := mustParse(t)

	for name, kind := range map[string]TypeKind{
		"User":     TypeKindObject,
		"Role":     TypeKindEnum,
		"DateTime": TypeKindScalar,
		"Pet":      TypeKindUnion,
		"String":   TypeKindScalar, // builtin
		"ID":       TypeKindScalar, // builtin
	} {
		typ := s.Type(name)
		if typ == nil {
			t.Fatalf("type %q not indexed", name)
		}
		if typ.Kind != kind {
			t.Errorf("type %q kind = %v, want %v", name, typ.Kind, kind)
		}
	}
	if s.Type("Nope") != nil {
		t.Error("unknown type lookup should return nil")
	}
}

func TestExtensionFieldsMergeInDeclarationOrder(t *testing.T) {
	s := mustParse(t)

	var names []string
	for _, f := range s.Type("User").Fields {
		names = append(names, f.Name)
	}
	want := []string{"id", "email", "role", "tags", "friend", "joined", "nickname"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldType(t *testing.T) {
	s := mustParse(t)

	ref, err := s.FieldType("User", "email")
	require.NoError(t, err)
	if got := ref.String(); got != "String!" {
		t.Errorf("User.email type = %s, want String!", got)
	}

	_, err = s.FieldType("User", "missing")
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if serr.Type != "User" || serr.Field != "missing" {
		t.Errorf("unexpected SchemaError contents: %+v", serr)
	}

	_, err = s.FieldType("Ghost", "id")
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaError for unknown type, got %v", err)
	}
}

func TestFirstEnumValue(t *testing.T) {
	s := mustParse(t)

	first, err := s.FirstEnumValue("Role")
	require.NoError(t, err)
	if first != "ADMIN" {
		t.Errorf("first enum value = %q, want ADMIN", first)
	}

	if _, err := s.FirstEnumValue("User"); err == nil {
		t.Error("expected error for non-enum type")
	}
}

func TestTypeRefListDetection(t *testing.T) {
	named := func(n string) *TypeRef { return &TypeRef{Kind: TypeRefKindNamed, Named: n} }
	list := func(of *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindList, OfType: of} }
	nonNull := func(of *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: of} }

	for _, tc := range []struct {
		name string
		ref  *TypeRef
		list bool
	}{
		{"named", named("String"), false},
		{"non-null named", nonNull(named("String")), false},
		{"list", list(named("String")), true},
		{"non-null list", nonNull(list(named("String"))), true},
		{"nullable list of non-null", list(nonNull(named("String"))), true},
		{"nil", nil, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ref.IsList(); got != tc.list {
				t.Errorf("IsList() = %v, want %v", got, tc.list)
			}
		})
	}
}

func TestNamedTypeUnwrapsAllWrappers(t *testing.T) {
	s := mustParse(t)

	ref, err := s.FieldType("User", "tags")
	require.NoError(t, err)
	if got := ref.NamedType(); got != "String" {
		t.Errorf("NamedType() = %q, want String", got)
	}
	if !ref.IsList() {
		t.Error("User.tags should be list-shaped")
	}
}

func TestParseRejectsBrokenSDL(t *testing.T) {
	_, err := Parse("broken.graphql", "type User {")
	if err == nil {
		t.Fatal("expected parse error")
	}
}
