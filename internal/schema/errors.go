package schema

import "fmt"

// SchemaError reports a type or field referenced by a fragment that the
// schema does not define. It aborts the current fragment only; the batch
// carries on.
type SchemaError struct {
	Type  string
	Field string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema: field %q not found on type %q", e.Field, e.Type)
	}
	return fmt.Sprintf("schema: type %q not found", e.Type)
}
