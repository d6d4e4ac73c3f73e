// Package resolve drives fragment-to-mock resolution. Each selection is
// classified against the schema and turned into a literal, a registry
// reference, an enum reference, or a call into another generated factory;
// object-typed fields re-enter the pipeline recursively. A memo table keeps
// every fragment resolved at most once per run and an in-progress set keeps
// self- and mutually-referential schemas from recursing forever.
package resolve

import (
	"context"

	"go.uber.org/zap"

	"github.com/camaragon/gql-codegen-tools/internal/classify"
	"github.com/camaragon/gql-codegen-tools/internal/discovery"
	"github.com/camaragon/gql-codegen-tools/internal/emit"
	"github.com/camaragon/gql-codegen-tools/internal/fragment"
	"github.com/camaragon/gql-codegen-tools/internal/registry"
	"github.com/camaragon/gql-codegen-tools/internal/schema"
)

// Emitter receives finished factories and answers artifact-existence checks
// for the memoization step.
type Emitter interface {
	Emit(f *emit.Factory) error
	Exists(name string) bool
}

// Synthesizer produces a literal token for a scalar-classified field. The
// resolver never depends on specific values, only on the token being a
// valid expression.
type Synthesizer interface {
	Literal(scalarKind, fieldName string) string
}

// Params wires a Resolver.
type Params struct {
	Schema    *schema.Schema
	Documents discovery.Source
	Registry  *registry.Registry
	Synth     Synthesizer
	Emitter   Emitter
	Log       *zap.Logger
}

// Resolver resolves fragment documents into factories. Resolution is
// sequential; a Resolver must not be shared between goroutines.
type Resolver struct {
	schema    *schema.Schema
	documents discovery.Source
	registry  *registry.Registry
	synth     Synthesizer
	emitter   Emitter
	log       *zap.Logger

	// resolved memoizes fragments produced this run; inProgress holds the
	// names on the active resolution path, guarding against cycles.
	resolved   map[string]bool
	inProgress map[string]bool
}

func New(p Params) *Resolver {
	return &Resolver{
		schema:     p.Schema,
		documents:  p.Documents,
		registry:   p.Registry,
		synth:      p.Synth,
		emitter:    p.Emitter,
		log:        p.Log,
		resolved:   map[string]bool{},
		inProgress: map[string]bool{},
	}
}

// ResolveName resolves the named document end to end: read, parse, resolve,
// emit. Roots always regenerate unless already produced this run.
func (r *Resolver) ResolveName(ctx context.Context, name string) error {
	if r.resolved[name] {
		return nil
	}
	content, err := r.documents.Read(ctx, name)
	if err != nil {
		return err
	}
	doc, err := fragment.Parse(name, content)
	if err != nil {
		return err
	}
	// The file-derived identity names the artifact, whatever the fragment
	// definition calls itself.
	doc.Name = name
	return r.resolveDocument(ctx, doc)
}

// ResolveDocument resolves an already parsed document under its own name.
func (r *Resolver) ResolveDocument(ctx context.Context, doc *fragment.Document) error {
	return r.resolveDocument(ctx, doc)
}

func (r *Resolver) resolveDocument(ctx context.Context, doc *fragment.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.resolved[doc.Name] {
		return nil
	}
	if r.schema.Type(doc.TypeCondition) == nil {
		return &schema.SchemaError{Type: doc.TypeCondition}
	}
	if doc.InlineFragments > 0 {
		r.log.Warn("inline fragments are not supported, skipped",
			zap.String("fragment", doc.Name),
			zap.Int("count", doc.InlineFragments))
	}

	r.inProgress[doc.Name] = true
	defer delete(r.inProgress, doc.Name)

	factory := &emit.Factory{Name: doc.Name, TypeName: doc.TypeCondition}

	for _, spread := range doc.Spreads {
		target, err := r.ensureNested(ctx, spread)
		if err != nil {
			r.log.Warn("composed fragment failed, dropping spread",
				zap.String("fragment", doc.Name),
				zap.String("spread", spread),
				zap.Error(err))
			continue
		}
		if target == "" {
			r.log.Warn("composed fragment not found, dropping spread",
				zap.String("fragment", doc.Name),
				zap.String("spread", spread))
			continue
		}
		factory.Spreads = append(factory.Spreads, target)
	}

	seen := map[string]bool{}
	for _, sel := range doc.Selections {
		if sel.Field == "__typename" {
			// The emitter appends the discriminator exactly once.
			continue
		}
		if seen[sel.Field] {
			r.log.Warn("duplicate field, keeping the first occurrence",
				zap.String("fragment", doc.Name),
				zap.String("field", sel.Field))
			continue
		}
		seen[sel.Field] = true

		field, err := r.resolveSelection(ctx, doc, sel)
		if err != nil {
			return err
		}
		if field != nil {
			factory.Fields = append(factory.Fields, *field)
		}
	}

	if err := r.emitter.Emit(factory); err != nil {
		return err
	}
	r.resolved[doc.Name] = true
	r.log.Info("resolved fragment",
		zap.String("fragment", doc.Name),
		zap.String("type", doc.TypeCondition),
		zap.Int("fields", len(factory.Fields)),
		zap.Int("spreads", len(factory.Spreads)))
	return nil
}

// resolveSelection turns one selection into an emitted field. A nil field
// with a nil error means the selection was skipped.
func (r *Resolver) resolveSelection(ctx context.Context, doc *fragment.Document, sel fragment.Selection) (*emit.Field, error) {
	ref, err := r.schema.FieldType(doc.TypeCondition, sel.Field)
	if err != nil {
		return nil, err
	}
	base := ref.NamedType()
	if r.schema.Type(base) == nil {
		return nil, &schema.SchemaError{Type: base}
	}

	class, list := classify.Classify(r.schema, ref, sel.Field)
	switch class {
	case classify.ClassID:
		r.registry.GetOrCreate(doc.TypeCondition, base)
		return &emit.Field{Name: sel.Field, Expr: emit.RegistryRef{TypeName: doc.TypeCondition}, List: list}, nil
	case classify.ClassScalar:
		return &emit.Field{Name: sel.Field, Expr: emit.Literal(r.synth.Literal(base, sel.Field)), List: list}, nil
	case classify.ClassEnum:
		member, err := r.schema.FirstEnumValue(base)
		if err != nil {
			return nil, err
		}
		return &emit.Field{Name: sel.Field, Expr: emit.EnumRef{Enum: base, Member: member}, List: list}, nil
	default:
		expr, ok := r.resolveObjectField(ctx, doc, sel, base)
		if !ok {
			return nil, nil
		}
		return &emit.Field{Name: sel.Field, Expr: expr, List: list}, nil
	}
}
