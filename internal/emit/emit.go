// Package emit renders resolved fragments into TypeScript mock modules. Each
// artifact exports a default mock object and an override-merging factory
// function. Rendering is deterministic: identical input yields identical
// bytes.
package emit

// Factory is one resolved fragment, ready to render.
type Factory struct {
	Name     string   // fragment name, PascalCase
	TypeName string   // schema type condition, used as the discriminator value
	Spreads  []string // composed fragment names, declaration order
	Fields   []Field  // declaration order
}

// Field is one resolved selection.
type Field struct {
	Name string
	Expr Expr
	// List wraps the expression in a single-element array literal.
	List bool
}

// Expr is a resolved field expression. The set is closed: literal token,
// registry reference, enum member reference, or nested factory call.
type Expr interface{ expr() }

// Literal is a verbatim literal token.
type Literal string

// RegistryRef selects the first sample identifier of a type.
type RegistryRef struct{ TypeName string }

// EnumRef references a member of a generated enum type. Member carries the
// declared SCREAMING_SNAKE name; rendering pascal-cases it.
type EnumRef struct {
	Enum   string
	Member string
}

// FactoryCall invokes another generated factory.
type FactoryCall struct{ Fragment string }

func (Literal) expr()     {}
func (RegistryRef) expr() {}
func (EnumRef) expr()     {}
func (FactoryCall) expr() {}

// Filename returns the artifact file name for a fragment:
// UserCard -> user-card.mock.ts.
func Filename(fragmentName string) string {
	return kebabCase(fragmentName) + ".mock.ts"
}
