package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	schema "github.com/camaragon/gql-codegen-tools/internal/schema"
)

const classifySDL = `
scalar DateTime

enum Role {
  ADMIN
  MEMBER
}

union Pet = Dog | Cat

type Dog { id: ID! }
type Cat { id: ID! }

type User {
  id: ID!
  key: Int!
  email: String!
  joined: DateTime
  role: Role!
  roles: [Role!]!
  tags: [String!]
  friend: User
  friends: [User]
  pet: Pet
}
`

func TestClassify(t *testing.T) {
	s, err := schema.Parse("classify.graphql", classifySDL)
	require.NoError(t, err)

	for _, tc := range []struct {
		field string
		class Class
		list  bool
	}{
		{"id", ClassID, false},
		{"key", ClassScalar, false},
		{"email", ClassScalar, false},
		{"joined", ClassScalar, false}, // declared custom scalar
		{"role", ClassEnum, false},
		{"roles", ClassEnum, true},
		{"tags", ClassScalar, true},
		{"friend", ClassObject, false},
		{"friends", ClassObject, true},
		{"pet", ClassObject, false}, // unions resolve like objects
	} {
		t.Run(tc.field, func(t *testing.T) {
			ref, err := s.FieldType("User", tc.field)
			require.NoError(t, err)
			class, list := Classify(s, ref, tc.field)
			if class != tc.class {
				t.Errorf("class = %v, want %v", class, tc.class)
			}
			if list != tc.list {
				t.Errorf("list = %v, want %v", list, tc.list)
			}
		})
	}
}

func TestClassifyIDWinsOverScalarKind(t *testing.T) {
	s, err := schema.Parse("id.graphql", `type Node { id: Int! }`)
	require.NoError(t, err)

	ref, err := s.FieldType("Node", "id")
	require.NoError(t, err)
	class, _ := Classify(s, ref, "id")
	if class != ClassID {
		t.Errorf("id over Int should classify as id field, got %v", class)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	s, err := schema.Parse("classify.graphql", classifySDL)
	require.NoError(t, err)
	ref, err := s.FieldType("User", "role")
	require.NoError(t, err)

	first, firstList := Classify(s, ref, "role")
	for i := 0; i < 10; i++ {
		class, list := Classify(s, ref, "role")
		if class != first || list != firstList {
			t.Fatal("classification changed between identical calls")
		}
	}
}
