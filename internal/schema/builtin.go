package schema

// Built-in scalars are always present so that lookups on them succeed even
// when the SDL never mentions them.
var builtins = []*Type{
	{Name: "String", Kind: TypeKindScalar},
	{Name: "Int", Kind: TypeKindScalar},
	{Name: "Float", Kind: TypeKindScalar},
	{Name: "Boolean", Kind: TypeKindScalar},
	{Name: "ID", Kind: TypeKindScalar},
}
