package fragment

import "fmt"

// ParseError reports a document that could not be read as a fragment:
// either it does not parse at all or it holds no fragment definition.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fragment: parse %q: %v", e.File, e.Err)
	}
	return fmt.Sprintf("fragment: no fragment definition in %q", e.File)
}

func (e *ParseError) Unwrap() error { return e.Err }
