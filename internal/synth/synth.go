// Package synth produces literal tokens for scalar-classified fields. The
// field name picks a semantic generator (email, name, url, ...) and the
// scalar kind picks the literal shape. Every call is seeded from its inputs
// so regeneration yields identical literals.
package synth

import (
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Synthesizer turns (scalar kind, field name) pairs into TypeScript
// literal tokens.
type Synthesizer struct{}

func New() *Synthesizer { return &Synthesizer{} }

// Literal returns a syntactically valid TypeScript literal for the field.
// Pure: the value is a function of the scalar kind and the lowercase field
// name only.
func (s *Synthesizer) Literal(scalarKind, fieldName string) string {
	field := strings.ToLower(fieldName)
	faker := gofakeit.New(seed(scalarKind + ":" + field))

	switch {
	case scalarKind == "Int":
		return strconv.Itoa(faker.Number(1, 10000))
	case scalarKind == "Float":
		return strconv.FormatFloat(faker.Float64Range(1, 1000), 'f', 2, 64)
	case scalarKind == "Boolean":
		return strconv.FormatBool(faker.Bool())
	case isDateKind(scalarKind):
		return quote(faker.Date().UTC().Format(time.RFC3339))
	case isUUIDKind(scalarKind):
		// Name-derived v5 UUID: stable across runs without a stored seed.
		return quote(uuid.NewSHA1(uuid.NameSpaceURL, []byte("gqlmock:"+field)).String())
	case scalarKind == "String" || scalarKind == "ID":
		return quote(stringValue(faker, field))
	default:
		return quote("mock-" + fieldName)
	}
}

// stringValue applies the substring rules in a fixed order. The compound
// names go first so that "username" never falls through to the bare "name"
// rule.
func stringValue(faker *gofakeit.Faker, field string) string {
	switch {
	case strings.Contains(field, "email"):
		return faker.Email()
	case strings.Contains(field, "username"):
		return faker.Username()
	case strings.Contains(field, "firstname"):
		return faker.FirstName()
	case strings.Contains(field, "lastname"), strings.Contains(field, "surname"):
		return faker.LastName()
	case strings.Contains(field, "name"):
		return faker.Name()
	case strings.Contains(field, "url"), strings.Contains(field, "website"):
		return faker.URL()
	case strings.Contains(field, "phone"):
		return faker.Phone()
	case strings.Contains(field, "city"):
		return faker.City()
	case strings.Contains(field, "country"):
		return faker.Country()
	case strings.Contains(field, "address"), strings.Contains(field, "street"):
		return faker.Street()
	default:
		return faker.Word()
	}
}

func isDateKind(kind string) bool {
	switch kind {
	case "Date", "DateTime", "Time", "Timestamp", "Instant":
		return true
	}
	return false
}

func isUUIDKind(kind string) bool {
	switch strings.ToLower(kind) {
	case "uuid", "guid":
		return true
	}
	return false
}

func seed(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	v := h.Sum64()
	if v == 0 {
		// gofakeit treats seed 0 as "randomize".
		return 1
	}
	return v
}

// quote renders a double-quoted TypeScript string literal.
func quote(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
