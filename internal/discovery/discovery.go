// Package discovery locates fragment documents by a filename convention and
// hands their contents to the resolver.
package discovery

import (
	"context"
	"errors"
)

// ErrNotFound reports a document name no source knows about. The resolver
// treats it as a skippable miss, not a failure.
var ErrNotFound = errors.New("fragment document not found")

// Info identifies one discovered fragment document. Name is the PascalCase
// document identity derived from the file base: user-profile.fragment.graphql
// becomes UserProfile.
type Info struct {
	Name string
	Path string
}

// Source lists fragment documents and reads their contents.
type Source interface {
	List(ctx context.Context) ([]Info, error)
	Read(ctx context.Context, name string) (string, error)
}
