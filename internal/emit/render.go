package emit

import (
	"sort"
	"strings"
)

const generatedHeader = "// Code generated by gqlmock. DO NOT EDIT."

// registryExport is the symbol the registry store module exports.
const registryExport = "sampleIds"

// Options locates the modules generated code imports from.
type Options struct {
	// TypesImport is the module exporting generated enum types.
	TypesImport string
	// RegistryImport is the module exporting the sample identifier registry.
	RegistryImport string
}

// Render serializes the factory. Layout: generated header, import block
// (enum import, registry import, then mock imports sorted by module path),
// the default mock object, the override-merging factory function. Spread
// contributions come first, explicit fields follow in declaration order, the
// discriminator field is always last.
func Render(f *Factory, opts Options) []byte {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\n\n")

	if imports := importLines(f, opts); len(imports) > 0 {
		for _, line := range imports {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	mockName := camelCase(f.Name) + "Mock"
	b.WriteString("export const " + mockName + " = {\n")
	for _, spread := range f.Spreads {
		b.WriteString("  ..." + camelCase(spread) + "Mock,\n")
	}
	for _, field := range f.Fields {
		b.WriteString("  " + field.Name + ": " + renderExpr(field) + ",\n")
	}
	b.WriteString("  __typename: " + `"` + f.TypeName + `"` + ",\n")
	b.WriteString("};\n\n")

	b.WriteString("export const create" + pascalCase(f.Name) + "Mock = (overrides = {}) => ({\n")
	b.WriteString("  ..." + mockName + ",\n")
	b.WriteString("  ...overrides,\n")
	b.WriteString("});\n")
	return []byte(b.String())
}

func renderExpr(f Field) string {
	var expr string
	switch e := f.Expr.(type) {
	case Literal:
		expr = string(e)
	case RegistryRef:
		expr = registryExport + "." + e.TypeName + "[0]"
	case EnumRef:
		expr = e.Enum + "." + enumMember(e.Member)
	case FactoryCall:
		expr = "create" + pascalCase(e.Fragment) + "Mock()"
	}
	if f.List {
		expr = "[" + expr + "]"
	}
	return expr
}

// importLines collects the dependency declarations of a factory. Symbols
// from the same module share one import line; lines and symbol lists are
// sorted so the block is reproducible.
func importLines(f *Factory, opts Options) []string {
	enums := map[string]struct{}{}
	registry := false
	mocks := map[string]map[string]struct{}{}

	addMock := func(symbol, fragment string) {
		path := "./" + kebabCase(fragment) + ".mock"
		if mocks[path] == nil {
			mocks[path] = map[string]struct{}{}
		}
		mocks[path][symbol] = struct{}{}
	}

	for _, spread := range f.Spreads {
		addMock(camelCase(spread)+"Mock", spread)
	}
	for _, field := range f.Fields {
		switch e := field.Expr.(type) {
		case EnumRef:
			enums[e.Enum] = struct{}{}
		case RegistryRef:
			registry = true
		case FactoryCall:
			addMock("create"+pascalCase(e.Fragment)+"Mock", e.Fragment)
		}
	}

	var lines []string
	if len(enums) > 0 {
		lines = append(lines, importLine(sortedKeys(enums), opts.TypesImport))
	}
	if registry {
		lines = append(lines, importLine([]string{registryExport}, opts.RegistryImport))
	}
	for _, path := range sortedKeys(mocks) {
		lines = append(lines, importLine(sortedKeys(mocks[path]), path))
	}
	return lines
}

func importLine(symbols []string, from string) string {
	return "import { " + strings.Join(symbols, ", ") + " } from " + `"` + from + `"` + ";"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
